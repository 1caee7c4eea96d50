package trait

import "fmt"

type Tweet struct {
	Username string `json:"username" yaml:"username"`
	Content  string `json:"content" yaml:"content"`
	Reply    bool   `json:"reply" yaml:"reply"`
	Retweet  bool   `json:"retweet" yaml:"retweet"`
}

// SummarizeAuthor implements [AuthorSummarizer].
func (t *Tweet) SummarizeAuthor() string {
	return "@" + t.Username
}

// Summarize implements [Summarizer].
func (t *Tweet) Summarize() string {
	return fmt.Sprintf("%s, (Read more from %s...)", t.Content, t.SummarizeAuthor())
}

// Display implements [Displayer].
func (t *Tweet) Display() string {
	return fmt.Sprintf("%s: %s", t.SummarizeAuthor(), t.Content)
}

var (
	_ Summarizer       = &Tweet{}
	_ SummaryDisplayer = &Tweet{}
)
