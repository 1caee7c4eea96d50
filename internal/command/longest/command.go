package longest

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/traitkit/internal/command/common"
	"github.com/bornholm/traitkit/pkg/lifetime"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

const (
	paramMode    = "mode"
	paramLang    = "lang"
	paramOutlive = "outlive"
)

const (
	ModeBytes    = "bytes"
	ModeRunes    = "runes"
	ModeLexical  = "lexical"
	ModeCollated = "collated"
)

type Result struct {
	Mode   string `json:"mode" yaml:"mode"`
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
	Result string `json:"result" yaml:"result"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "longest",
		Usage:     "Select the longest (or greatest) of two strings",
		ArgsUsage: "<first> <second>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    paramMode,
				Aliases: []string{"m"},
				Value:   ModeBytes,
				Usage:   "Selection rule (available: 'bytes', 'runes', 'lexical', 'collated')",
			},
			&cli.StringFlag{
				Name:  paramLang,
				Value: "de",
				Usage: "BCP 47 language tag used by the 'collated' mode",
			},
			&cli.BoolFlag{
				Name:  paramOutlive,
				Usage: "Read the result after the second string's scope has ended",
			},
		},
		Action: func(cCtx *cli.Context) error {
			if e, g := 2, cCtx.NArg(); e != g {
				return errors.Errorf("expected %d arguments, got %d", e, g)
			}

			mode := cCtx.String(paramMode)

			ctx := slogx.WithAttrs(cCtx.Context,
				slog.String("command", "longest"),
				slog.String("mode", mode),
			)

			choose, err := Chooser(mode, cCtx.String(paramLang))
			if err != nil {
				return errors.WithStack(err)
			}

			first, second := cCtx.Args().Get(0), cCtx.Args().Get(1)

			selected, err := Select(first, second, choose, cCtx.Bool(paramOutlive))
			if err != nil {
				return errors.WithStack(err)
			}

			slog.DebugContext(ctx, "string selected", slog.String("result", selected))

			result := Result{
				Mode:   mode,
				First:  first,
				Second: second,
				Result: selected,
			}

			return common.Render(cCtx, result, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "The longest string is %s\n", result.Result); err != nil {
					return errors.WithStack(err)
				}

				return nil
			})
		},
	}
}

// Chooser returns the selection function associated with mode.
func Chooser(mode string, lang string) (func(x, y string) string, error) {
	switch mode {
	case ModeBytes:
		return lifetime.Longest, nil
	case ModeRunes:
		return lifetime.LongestRunes, nil
	case ModeLexical:
		return lifetime.Larger, nil
	case ModeCollated:
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse language '%s'", lang)
		}

		return func(x, y string) string {
			return lifetime.LargerCollated(tag, x, y)
		}, nil
	default:
		return nil, errors.Errorf("unknown mode '%s'", mode)
	}
}

// Select borrows first in an outer scope and second in an inner one. When
// outlive is true the result is read after the inner scope has ended, which
// fails with [lifetime.ErrLifetimeViolation].
func Select(first, second string, choose func(x, y string) string, outlive bool) (string, error) {
	var (
		selected string
		ref      lifetime.Ref
	)

	err := lifetime.Within("first", func(outer *lifetime.Scope) error {
		err := lifetime.Within("second", func(inner *lifetime.Scope) error {
			ref = lifetime.SelectRef(outer.Borrow(first), inner.Borrow(second), choose)
			if outlive {
				return nil
			}

			value, err := ref.Get()
			if err != nil {
				return errors.WithStack(err)
			}

			selected = value

			return nil
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if outlive {
			value, err := ref.Get()
			if err != nil {
				return errors.WithStack(err)
			}

			selected = value
		}

		return nil
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	return selected, nil
}
