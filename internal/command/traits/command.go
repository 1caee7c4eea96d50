package traits

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/traitkit/internal/command/common"
	"github.com/bornholm/traitkit/pkg/trait"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramUsername       = "username"
	paramTweetContent   = "tweet-content"
	paramHeadline       = "headline"
	paramLocation       = "location"
	paramAuthor         = "author"
	paramArticleContent = "article-content"
)

type Result struct {
	Tweet   Summary `json:"tweet" yaml:"tweet"`
	Article Summary `json:"article" yaml:"article"`
}

type Summary struct {
	Author  string `json:"author" yaml:"author"`
	Summary string `json:"summary" yaml:"summary"`
	Display string `json:"display" yaml:"display"`
}

func newSummary[T trait.SummaryDisplayer](item T) Summary {
	return Summary{
		Author:  item.SummarizeAuthor(),
		Summary: trait.Summarize(item),
		Display: item.Display(),
	}
}

func newFlags() []cli.Flag {
	return []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramUsername,
			Value: "horse_ebooks",
			Usage: "Tweet author username",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramTweetContent,
			Value: "of course, as you probably already know, people",
			Usage: "Tweet content",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramHeadline,
			Value: "Penguins win the Stanley Cup Championship!",
			Usage: "Article headline",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramLocation,
			Value: "Pittsburgh, PA, USA",
			Usage: "Article location",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramAuthor,
			Value: "Iceburgh",
			Usage: "Article author",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:  paramArticleContent,
			Value: "The Pittsburgh Penguins once again are the best hockey team in the NHL.",
			Usage: "Article content",
		}),
	}
}

func Command() *cli.Command {
	flags := newFlags()

	return &cli.Command{
		Name:   "traits",
		Usage:  "Summarize a tweet and a news article through the summary capability",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, common.NewConfigSourceFunc()),
		Action: func(cCtx *cli.Context) error {
			ctx := slogx.WithAttrs(cCtx.Context, slog.String("command", "traits"))

			tweet := &trait.Tweet{
				Username: cCtx.String(paramUsername),
				Content:  cCtx.String(paramTweetContent),
			}

			article := &trait.NewsArticle{
				Headline: cCtx.String(paramHeadline),
				Location: cCtx.String(paramLocation),
				Author:   cCtx.String(paramAuthor),
				Content:  cCtx.String(paramArticleContent),
			}

			slog.DebugContext(ctx, "summarizing", slog.Any("tweet", tweet), slog.Any("article", article))

			result := Result{
				Tweet:   newSummary(tweet),
				Article: newSummary(article),
			}

			return common.Render(cCtx, result, func(w io.Writer) error {
				return writeText(w, tweet, article)
			})
		},
	}
}

func writeText(w io.Writer, tweet *trait.Tweet, article *trait.NewsArticle) error {
	if _, err := fmt.Fprintf(w, "1 new tweet: %s\n", trait.Summarize(tweet)); err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(w, "New article available! %s\n", trait.Summarize(article)); err != nil {
		return errors.WithStack(err)
	}

	if err := trait.Notify(w, article); err != nil {
		return errors.WithStack(err)
	}

	if err := trait.NotifyBound(w, tweet); err != nil {
		return errors.WithStack(err)
	}

	if err := trait.NotifyBoth(w, article, article); err != nil {
		return errors.WithStack(err)
	}

	if err := trait.NotifyDisplay(w, tweet); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
