package interfaces

import (
	"context"

	"github.com/secmon-lab/codeseeker/pkg/domain/model/github"
)

type GitHubClient interface {
	// SearchRepositories runs one repository search and returns the upstream
	// result as is. A non-success status is reported as *errs.UpstreamError.
	SearchRepositories(ctx context.Context, query string) (*github.SearchResult, error)

	// GetReadme returns the raw README text of fullName (owner/repo). Any
	// failure, including a repository without README, wraps
	// errs.ErrReadmeUnavailable.
	GetReadme(ctx context.Context, fullName string) (string, error)
}
