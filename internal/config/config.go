package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger Logger `envPrefix:"LOGGER_"`
	Output Output `envPrefix:"OUTPUT_"`
}

type Logger struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

type Output struct {
	Format string `env:"FORMAT" envDefault:"text"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "TRAITKIT_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
