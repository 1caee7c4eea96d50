package largest

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/traitkit/internal/command/common"
	"github.com/bornholm/traitkit/pkg/bound"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/constraints"
)

const (
	paramKind = "kind"
)

const (
	KindInt    = "int"
	KindFloat  = "float"
	KindChar   = "char"
	KindString = "string"
)

type Result struct {
	Kind    string `json:"kind" yaml:"kind"`
	Count   int    `json:"count" yaml:"count"`
	Largest string `json:"largest" yaml:"largest"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "largest",
		Usage:     "Find the largest of the given values",
		ArgsUsage: "<value> [value...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    paramKind,
				Aliases: []string{"k"},
				Value:   KindInt,
				Usage:   "Type of the values (available: 'int', 'float', 'char', 'string')",
			},
		},
		Action: func(cCtx *cli.Context) error {
			kind := cCtx.String(paramKind)
			values := cCtx.Args().Slice()

			ctx := slogx.WithAttrs(cCtx.Context,
				slog.String("command", "largest"),
				slog.String("kind", kind),
			)

			slog.DebugContext(ctx, "searching largest value", slog.Int("count", len(values)))

			largest, err := Largest(kind, values)
			if err != nil {
				return errors.WithStack(err)
			}

			result := Result{
				Kind:    kind,
				Count:   len(values),
				Largest: largest,
			}

			return common.Render(cCtx, result, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "The largest %s is %s\n", kind, result.Largest); err != nil {
					return errors.WithStack(err)
				}

				return nil
			})
		},
	}
}

// Largest parses values as the given kind and returns the greatest one,
// formatted back as a string.
func Largest(kind string, values []string) (string, error) {
	switch kind {
	case KindInt:
		return largestOf(values, func(v string) (int64, error) {
			return strconv.ParseInt(v, 10, 64)
		}, func(v int64) string {
			return strconv.FormatInt(v, 10)
		})

	case KindFloat:
		return largestOf(values, func(v string) (float64, error) {
			return strconv.ParseFloat(v, 64)
		}, func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})

	case KindChar:
		return largestOf(values, parseChar, func(v rune) string {
			return string(v)
		})

	case KindString:
		return largestOf(values, func(v string) (string, error) {
			return v, nil
		}, func(v string) string {
			return v
		})

	default:
		return "", errors.Errorf("unknown kind '%s'", kind)
	}
}

func largestOf[T constraints.Ordered](values []string, parse func(string) (T, error), format func(T) string) (string, error) {
	parsed := make([]T, 0, len(values))

	for _, raw := range values {
		v, err := parse(raw)
		if err != nil {
			return "", errors.Wrapf(err, "could not parse value '%s'", raw)
		}

		parsed = append(parsed, v)
	}

	largest, err := bound.Largest(parsed)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return format(largest), nil
}

func parseChar(v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, errors.Errorf("'%s' is not a single character", v)
	}

	r, _ := utf8.DecodeRuneInString(v)

	return r, nil
}
