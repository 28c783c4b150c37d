package config

import (
	"log/slog"
	"time"

	ghadapter "github.com/secmon-lab/codeseeker/pkg/adapter/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token   string
	apiURL  string
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token sent as bearer credential, requests are anonymous when empty",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CODESEEKER_GITHUB_TOKEN"),
			Destination: &x.token,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL (e.g. https://ghe.example.com/api/v3/)",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CODESEEKER_GITHUB_API_URL"),
			Destination: &x.apiURL,
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a single GitHub API call, 0 means no timeout",
			Category:    "GitHub",
			Sources:     cli.EnvVars("CODESEEKER_GITHUB_TIMEOUT"),
			Destination: &x.timeout,
		},
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("api-url", x.apiURL),
		slog.Duration("timeout", x.timeout),
	)
}

func (x *GitHub) Configure() (*ghadapter.Client, error) {
	var opts []ghadapter.Option
	if x.token != "" {
		opts = append(opts, ghadapter.WithToken(x.token))
	}
	if x.apiURL != "" {
		opts = append(opts, ghadapter.WithBaseURL(x.apiURL))
	}
	if x.timeout > 0 {
		opts = append(opts, ghadapter.WithTimeout(x.timeout))
	}

	return ghadapter.New(opts...)
}
