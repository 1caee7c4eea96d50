package trait

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

func Notify(w io.Writer, item AuthorSummarizer) error {
	return writeLine(w, "Breaking news with trait as parameter! %s", Summarize(item))
}

// NotifyBound is [Notify] resolved per concrete type. The summary still
// follows the dynamic dispatch rules of [Summarize].
func NotifyBound[T AuthorSummarizer](w io.Writer, item T) error {
	return writeLine(w, "Breaking news with trait as parameter using the bound syntax! %s", Summarize(item))
}

// NotifyBoth notifies two items that share the same concrete type.
func NotifyBoth[T AuthorSummarizer](w io.Writer, item1, item2 T) error {
	if err := writeLine(w, "Two things want to be summarized!"); err != nil {
		return errors.WithStack(err)
	}

	if err := writeLine(w, "1: %s", Summarize(item1)); err != nil {
		return errors.WithStack(err)
	}

	if err := writeLine(w, "2: %s", Summarize(item2)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NotifyDisplay[T SummaryDisplayer](w io.Writer, item T) error {
	return writeLine(w, "Display: %s, Summary: %s", item.Display(), Summarize(item))
}

func writeLine(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format+"\n", args...); err != nil {
		return errors.Wrap(err, "could not write notification")
	}

	return nil
}
