package interfaces

import (
	"context"

	"github.com/secmon-lab/codeseeker/pkg/domain/model/repository"
)

type SearchUsecases interface {
	// SearchRepositories returns at most limit summaries for query, in
	// GitHub's ranking order, each enriched with its truncated README.
	SearchRepositories(ctx context.Context, query string, limit int) (*repository.SearchResult, error)
}
