package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/traitkit/internal/build"
	"github.com/bornholm/traitkit/internal/command/common"
	"github.com/bornholm/traitkit/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func Main(name string, usage string, commands ...*cli.Command) {
	conf, err := config.Parse()
	if err != nil {
		slog.Error("could not parse config", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	app := NewApp(conf, name, usage, commands...)

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func NewApp(conf *config.Config, name string, usage string, commands ...*cli.Command) *cli.App {
	flags := common.GlobalFlags(conf.Logger.Level, conf.Output.Format)
	loadConfigFile := altsrc.InitInputSourceWithContext(flags, common.NewConfigSourceFunc())

	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Flags:    flags,
		Before: func(ctx *cli.Context) error {
			if err := loadConfigFile(ctx); err != nil {
				return errors.Wrap(err, "could not load configuration file")
			}

			logLevel := ctx.String(common.ParamLogLevel)
			slogLevel := slog.LevelWarn

			switch logLevel {
			case "debug":
				slogLevel = slog.LevelDebug
			case "info":
				slogLevel = slog.LevelInfo
			case "warn":
				slogLevel = slog.LevelWarn
			case "error":
				slogLevel = slog.LevelError
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
					Level:     slog.Level(slogLevel),
					AddSource: true,
				}),
			})

			slog.SetDefault(logger)

			return nil
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool(common.ParamDebug)

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}
