package common

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes value to the application writer using the format selected
// with --format. The text format is delegated to text.
func Render(cCtx *cli.Context, value any, text func(w io.Writer) error) error {
	return RenderTo(cCtx.App.Writer, cCtx.String(ParamFormat), value, text)
}

func RenderTo(w io.Writer, format string, value any, text func(w io.Writer) error) error {
	switch format {
	case FormatText, "":
		if err := text(w); err != nil {
			return errors.WithStack(err)
		}

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return errors.Wrap(err, "could not encode json")
		}

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(value); err != nil {
			return errors.Wrap(err, "could not encode yaml")
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

	default:
		return errors.Errorf("unknown output format '%s'", format)
	}

	return nil
}
