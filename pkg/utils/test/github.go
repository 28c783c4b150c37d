package test

import (
	"testing"

	ghadapter "github.com/secmon-lab/codeseeker/pkg/adapter/github"
)

// NewGitHubClient returns a client for the real GitHub API authorized with
// TEST_GITHUB_TOKEN.
func NewGitHubClient(t *testing.T) *ghadapter.Client {
	t.Helper()
	vars := NewEnvVars(t, "TEST_GITHUB_TOKEN")

	client, err := ghadapter.New(ghadapter.WithToken(vars.Get("TEST_GITHUB_TOKEN")))
	if err != nil {
		t.Fatalf("failed to create GitHub client: %v", err)
	}
	return client
}
