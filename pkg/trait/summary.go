package trait

import "fmt"

// AuthorSummarizer is the required part of the summary capability.
type AuthorSummarizer interface {
	SummarizeAuthor() string
}

// Summarizer is implemented by variants that replace the default summary.
type Summarizer interface {
	AuthorSummarizer
	Summarize() string
}

// Displayer is the display capability.
type Displayer interface {
	Display() string
}

// SummaryDisplayer requires both the summary and display capabilities.
type SummaryDisplayer interface {
	AuthorSummarizer
	Displayer
}

// Summarize returns the summary of s. When the dynamic type of s provides its
// own Summarize, that method is used as is. Otherwise the summary is built
// from SummarizeAuthor.
func Summarize(s AuthorSummarizer) string {
	if custom, ok := s.(Summarizer); ok {
		return custom.Summarize()
	}

	return DefaultSummary(s)
}

// DefaultSummary returns the default summary template applied to s,
// ignoring any override.
func DefaultSummary(s AuthorSummarizer) string {
	return fmt.Sprintf("(Read more from %s...)", s.SummarizeAuthor())
}
