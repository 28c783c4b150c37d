package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/cli/config"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/errs"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/repository"
	"github.com/secmon-lab/codeseeker/pkg/usecase"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

const (
	formatJSON = "json"
	formatText = "text"
)

func cmdSearch() *cli.Command {
	var (
		limit     int
		format    string
		githubCfg config.GitHub
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Number of repositories to return",
				Value:       usecase.DefaultSearchLimit,
				Destination: &limit,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format [json|text]",
				Value:       formatText,
				Destination: &format,
			},
		},
		githubCfg.Flags(),
	)

	return &cli.Command{
		Name:      "search",
		Usage:     "Search GitHub repositories and print their summaries",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if format != formatJSON && format != formatText {
				return goerr.New("invalid output format", goerr.T(errs.TagValidation), goerr.V("format", format))
			}

			query := strings.Join(cmd.Args().Slice(), " ")
			if query == "" {
				return goerr.New("query is required", goerr.T(errs.TagValidation), goerr.TV(errutil.FieldKey, "query"))
			}

			githubClient, err := githubCfg.Configure()
			if err != nil {
				return err
			}

			uc := usecase.New(usecase.WithGitHubClient(githubClient))
			result, err := uc.SearchRepositories(ctx, query, limit)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if format == formatJSON {
				return printJSON(w, result)
			}
			return printText(w, result, time.Now())
		},
	}
}

func printJSON(w io.Writer, result *repository.SearchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return goerr.Wrap(err, "failed to write search result")
	}
	return nil
}

var (
	nameColor  = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.Faint)
	starsColor = color.New(color.FgYellow)
)

// relativeTime renders a GitHub timestamp like "3 days ago". Timestamps
// that do not parse are printed as they came.
func relativeTime(ts string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func printText(w io.Writer, result *repository.SearchResult, now time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s repositories matched, showing %d\n",
		humanize.Comma(int64(result.TotalCount)), len(result.Items))

	for i, item := range result.Items {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%d. %s  %s  forks %s",
			i+1,
			nameColor.Sprint(item.Name),
			starsColor.Sprintf("★ %s", humanize.Comma(int64(item.StargazersCount))),
			humanize.Comma(int64(item.ForksCount)),
		)
		if item.Language != nil {
			fmt.Fprintf(&b, "  [%s]", *item.Language)
		}
		if item.Fork {
			b.WriteString("  (fork)")
		}
		b.WriteString("\n")

		if item.Description != nil && *item.Description != "" {
			fmt.Fprintf(&b, "   %s\n", *item.Description)
		}
		fmt.Fprintf(&b, "   %s\n", item.URL)
		if item.Homepage != nil && *item.Homepage != "" {
			fmt.Fprintf(&b, "   homepage: %s\n", *item.Homepage)
		}
		if len(item.Topics) > 0 {
			fmt.Fprintf(&b, "   topics: %s\n", strings.Join(item.Topics, ", "))
		}

		meta := []string{"updated " + relativeTime(item.UpdatedAt, now)}
		if item.License != nil {
			meta = append(meta, "license: "+*item.License)
		}
		if item.ReadmeContent == nil {
			meta = append(meta, "no README")
		} else {
			meta = append(meta, "README "+humanize.Bytes(uint64(len(*item.ReadmeContent))))
		}
		b.WriteString("   " + dimColor.Sprint(strings.Join(meta, " | ")) + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write search result")
	}
	return nil
}
