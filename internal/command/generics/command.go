package generics

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/traitkit/internal/command/common"
	"github.com/bornholm/traitkit/pkg/generic"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramX      = "x"
	paramY      = "y"
	paramLeftX  = "left-x"
	paramLeftY  = "left-y"
	paramRightX = "right-x"
	paramRightY = "right-y"
)

type Result struct {
	Point    Point   `json:"point" yaml:"point"`
	Distance float32 `json:"distance" yaml:"distance"`
	Mixup    Mixup   `json:"mixup" yaml:"mixup"`
}

type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

type Mixup struct {
	X int    `json:"x" yaml:"x"`
	Y string `json:"y" yaml:"y"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "generics",
		Usage: "Compute a distance from origin and recombine two heterogeneous pairs",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  paramX,
				Value: 3,
				Usage: "X coordinate of the float32 point",
			},
			&cli.Float64Flag{
				Name:  paramY,
				Value: 4,
				Usage: "Y coordinate of the float32 point",
			},
			&cli.IntFlag{
				Name:  paramLeftX,
				Value: 5,
				Usage: "First value of the left pair",
			},
			&cli.Float64Flag{
				Name:  paramLeftY,
				Value: 10.4,
				Usage: "Second value of the left pair (dropped by the mixup)",
			},
			&cli.StringFlag{
				Name:  paramRightX,
				Value: "Hello",
				Usage: "First value of the right pair (dropped by the mixup)",
			},
			&cli.StringFlag{
				Name:  paramRightY,
				Value: "c",
				Usage: "Second value of the right pair",
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := slogx.WithAttrs(cCtx.Context, slog.String("command", "generics"))

			point := generic.NewFloat32Pair(float32(cCtx.Float64(paramX)), float32(cCtx.Float64(paramY)))

			left := generic.NewMixed(cCtx.Int(paramLeftX), cCtx.Float64(paramLeftY))
			right := generic.NewMixed(cCtx.String(paramRightX), cCtx.String(paramRightY))

			mixed, err := generic.Consume(&left, &right)
			if err != nil {
				return errors.WithStack(err)
			}

			slog.DebugContext(ctx, "pairs recombined",
				slog.Bool("leftConsumed", left.Consumed()),
				slog.Bool("rightConsumed", right.Consumed()),
			)

			result := Result{
				Point:    Point{X: point.X(), Y: point.Y()},
				Distance: point.DistanceFromOrigin(),
				Mixup:    Mixup{X: mixed.X, Y: mixed.Y},
			}

			return common.Render(cCtx, result, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "Distance from origin: %v\n", result.Distance); err != nil {
					return errors.WithStack(err)
				}

				if _, err := fmt.Fprintf(w, "p3.x = %v, p3.y = %v\n", result.Mixup.X, result.Mixup.Y); err != nil {
					return errors.WithStack(err)
				}

				return nil
			})
		},
	}
}
