package repository

import (
	"github.com/secmon-lab/codeseeker/pkg/domain/model/github"
)

// Summary is the curated view of one repository returned to plugin clients.
type Summary struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	URL             string   `json:"url"`
	Homepage        *string  `json:"homepage"`
	Topics          []string `json:"topics"`
	Language        *string  `json:"language"`
	License         *string  `json:"license"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Fork            bool     `json:"fork"`
	ReadmeContent   *string  `json:"readme_content"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
}

// SearchResult is the response envelope of a repository search. TotalCount
// is the number of matches reported by GitHub, not len(Items).
type SearchResult struct {
	TotalCount int        `json:"total_count"`
	Items      []*Summary `json:"items"`
}

// NewSummary maps a validated upstream record. readme is the already
// truncated README text, nil when unavailable.
func NewSummary(repo *github.Repository, readme *string) *Summary {
	topics := repo.Topics
	if topics == nil {
		topics = []string{}
	}

	return &Summary{
		Name:            *repo.FullName,
		Description:     repo.Description,
		URL:             *repo.HTMLURL,
		Homepage:        repo.Homepage,
		Topics:          topics,
		Language:        repo.Language,
		License:         repo.LicenseName(),
		StargazersCount: *repo.StargazersCount,
		ForksCount:      *repo.ForksCount,
		Fork:            *repo.Fork,
		ReadmeContent:   readme,
		CreatedAt:       *repo.CreatedAt,
		UpdatedAt:       *repo.UpdatedAt,
		PushedAt:        *repo.PushedAt,
	}
}
