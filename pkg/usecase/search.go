package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/errs"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/github"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/repository"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"github.com/secmon-lab/codeseeker/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// SearchRepositories searches GitHub for query and returns the first limit
// results, each one enriched with its README. READMEs are fetched
// concurrently, one goroutine per repository, and the call returns after
// every fetch has settled. A README that cannot be fetched leaves the
// summary's ReadmeContent nil instead of failing the search.
func (uc *UseCases) SearchRepositories(ctx context.Context, query string, limit int) (*repository.SearchResult, error) {
	if uc.githubClient == nil {
		return nil, goerr.New("GitHub client is not configured", goerr.T(errs.TagInternal))
	}
	if limit < 0 {
		return nil, goerr.New("limit must not be negative",
			goerr.T(errs.TagValidation),
			goerr.TV(errutil.LimitKey, limit))
	}

	found, err := uc.githubClient.SearchRepositories(ctx, query)
	if err != nil {
		return nil, err
	}

	records := found.Items
	if len(records) > limit {
		records = records[:limit]
	}

	// Every record is checked before any README request goes out so that a
	// malformed upstream answer does not trigger useless fetches.
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid repository in search result", goerr.TV(errutil.QueryKey, query))
		}
	}

	logging.From(ctx).Debug("repositories found",
		"query", query,
		"total_count", found.TotalCount,
		"returned", len(found.Items),
		"limit", limit,
	)

	return &repository.SearchResult{
		TotalCount: found.TotalCount,
		Items:      uc.enrich(ctx, records),
	}, nil
}

// enrich builds one summary per record, preserving order.
func (uc *UseCases) enrich(ctx context.Context, records []*github.Repository) []*repository.Summary {
	summaries := make([]*repository.Summary, len(records))

	var eg errgroup.Group
	for i, rec := range records {
		eg.Go(func() error {
			summaries[i] = repository.NewSummary(rec, uc.fetchReadme(ctx, rec.Name()))
			return nil
		})
	}
	// Tasks never fail; Wait is only the join point.
	_ = eg.Wait()

	return summaries
}

// fetchReadme returns the truncated README of fullName, or nil when it is
// not available for any reason.
func (uc *UseCases) fetchReadme(ctx context.Context, fullName string) *string {
	text, err := uc.githubClient.GetReadme(ctx, fullName)
	if err != nil {
		logging.From(ctx).Debug("readme is not available", "repository", fullName, logging.ErrAttr(err))
		return nil
	}

	truncated := repository.TruncateReadme(text)
	return &truncated
}
