package common

import (
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	ParamConfig   = "config"
	ParamDebug    = "debug"
	ParamLogLevel = "log-level"
	ParamFormat   = "format"
)

// GlobalFlags returns the application wide flags. Their defaults come from
// the environment configuration and may be overridden by the YAML file given
// with --config.
func GlobalFlags(defaultLogLevel, defaultFormat string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    ParamConfig,
			EnvVars: []string{"TRAITKIT_CLI_CONFIG"},
			Aliases: []string{"c"},
			Usage:   "YAML configuration file to use",
		},
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    ParamDebug,
			Value:   false,
			EnvVars: []string{"TRAITKIT_CLI_DEBUG"},
			Usage:   "Toggle debug mode",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    ParamLogLevel,
			EnvVars: []string{"TRAITKIT_CLI_LOG_LEVEL"},
			Usage:   "Set logging level",
			Value:   defaultLogLevel,
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    ParamFormat,
			Aliases: []string{"o"},
			EnvVars: []string{"TRAITKIT_CLI_FORMAT"},
			Usage:   "Output format (available: 'text', 'json', 'yaml')",
			Value:   defaultFormat,
		}),
	}
}

// NewConfigSourceFunc loads flag values from the YAML file named by the
// --config flag, if any.
func NewConfigSourceFunc() func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if path := cCtx.String(ParamConfig); path != "" {
			return altsrc.NewYamlSourceFromFile(path)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}
