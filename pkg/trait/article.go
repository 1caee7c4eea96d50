package trait

import "fmt"

type NewsArticle struct {
	Headline string `json:"headline" yaml:"headline"`
	Location string `json:"location" yaml:"location"`
	Author   string `json:"author" yaml:"author"`
	Content  string `json:"content" yaml:"content"`
}

// SummarizeAuthor implements [AuthorSummarizer].
func (a *NewsArticle) SummarizeAuthor() string {
	return a.Author
}

// Display implements [Displayer].
func (a *NewsArticle) Display() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

var (
	_ AuthorSummarizer = &NewsArticle{}
	_ SummaryDisplayer = &NewsArticle{}
)
