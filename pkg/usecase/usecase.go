package usecase

import (
	"github.com/secmon-lab/codeseeker/pkg/domain/interfaces"
)

// DefaultSearchLimit is the number of repositories returned when the caller
// does not ask for a specific limit.
const DefaultSearchLimit = 3

type UseCases struct {
	githubClient interfaces.GitHubClient
}

var _ interfaces.SearchUsecases = &UseCases{}

type Option func(*UseCases)

func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(u *UseCases) {
		u.githubClient = client
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
