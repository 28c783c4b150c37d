package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/codeseeker/pkg/cli"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/repository"
	"github.com/secmon-lab/codeseeker/pkg/utils/ptr"
	"github.com/secmon-lab/codeseeker/pkg/utils/safe"
)

const searchBody = `{
	"total_count": 1234567,
	"incomplete_results": false,
	"items": [
		{
			"full_name": "fogleman/nes",
			"description": "NES emulator written in Go.",
			"html_url": "https://github.com/fogleman/nes",
			"homepage": null,
			"topics": ["emulator", "nes"],
			"language": "Go",
			"license": {"key": "mit", "name": "MIT License"},
			"stargazers_count": 5432,
			"forks_count": 321,
			"fork": false,
			"created_at": "2015-01-01T00:00:00Z",
			"updated_at": "2024-01-01T00:00:00Z",
			"pushed_at": "2024-01-02T00:00:00Z"
		},
		{
			"full_name": "octo/second",
			"description": null,
			"html_url": "https://github.com/octo/second",
			"homepage": null,
			"topics": [],
			"language": null,
			"license": null,
			"stargazers_count": 1,
			"forks_count": 0,
			"fork": true,
			"created_at": "2015-01-01T00:00:00Z",
			"updated_at": "2024-01-01T00:00:00Z",
			"pushed_at": "2024-01-02T00:00:00Z"
		}
	]
}`

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/repositories":
			w.Header().Set("Content-Type", "application/json")
			safe.Write(r.Context(), w, []byte(searchBody))
		case "/repos/fogleman/nes/readme":
			safe.Write(r.Context(), w, []byte("# nes\n"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := cli.NewApp()
	app.Writer = &buf
	err := app.Run(context.Background(), append([]string{"codeseeker", "--log-quiet"}, args...))
	return buf.String(), err
}

func TestSearchCommand(t *testing.T) {
	upstream := newUpstream(t)

	t.Run("json output", func(t *testing.T) {
		out, err := runApp(t, "search", "--github-api-url", upstream.URL, "--format", "json", "--limit", "5", "nes", "emulator")
		gt.NoError(t, err).Required()

		var result repository.SearchResult
		gt.NoError(t, json.Unmarshal([]byte(out), &result)).Required()
		gt.Equal(t, result.TotalCount, 1234567)
		gt.A(t, result.Items).Length(2)
		gt.Equal(t, *result.Items[0].ReadmeContent, "# nes\n")
		gt.Equal(t, *result.Items[0].License, "MIT License")
		gt.Nil(t, result.Items[1].ReadmeContent)
	})

	t.Run("text output", func(t *testing.T) {
		out, err := runApp(t, "search", "--github-api-url", upstream.URL, "--limit", "1", "nes")
		gt.NoError(t, err).Required()

		gt.S(t, out).Contains("1,234,567 repositories matched, showing 1")
		gt.S(t, out).Contains("fogleman/nes")
		gt.S(t, out).Contains("5,432")
		gt.S(t, out).NotContains("octo/second")
	})

	t.Run("missing query", func(t *testing.T) {
		_, err := runApp(t, "search", "--github-api-url", upstream.URL)
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := runApp(t, "search", "--github-api-url", upstream.URL, "--format", "xml", "nes")
		gt.Error(t, err)
	})

	t.Run("upstream failure", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer failing.Close()

		_, err := runApp(t, "search", "--github-api-url", failing.URL, "nes")
		gt.Error(t, err)
	})
}

func TestPrintText(t *testing.T) {
	readme := strings.Repeat("x", 2048)
	result := &repository.SearchResult{
		TotalCount: 42,
		Items: []*repository.Summary{
			{
				Name:            "owner/repo",
				URL:             "https://github.com/owner/repo",
				Topics:          []string{"a", "b"},
				Language:        ptr.Ref("Go"),
				StargazersCount: 12000,
				ForksCount:      1500,
				ReadmeContent:   &readme,
				UpdatedAt:       "2024-01-01T00:00:00Z",
			},
			{
				Name:      "owner/no-readme",
				URL:       "https://github.com/owner/no-readme",
				Topics:    []string{},
				Fork:      true,
				UpdatedAt: "yesterday-ish",
			},
		},
	}

	var buf bytes.Buffer
	now := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	gt.NoError(t, cli.PrintText(&buf, result, now)).Required()

	out := buf.String()
	gt.S(t, out).Contains("42 repositories matched, showing 2")
	gt.S(t, out).Contains("12,000")
	gt.S(t, out).Contains("forks 1,500")
	gt.S(t, out).Contains("[Go]")
	gt.S(t, out).Contains("topics: a, b")
	gt.S(t, out).Contains("updated 3 days ago")
	gt.S(t, out).Contains("README 2.0 kB")
	gt.S(t, out).Contains("(fork)")
	gt.S(t, out).Contains("no README")
	gt.S(t, out).Contains("updated yesterday-ish")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	gt.Equal(t, cli.RelativeTime("2024-01-01T10:00:00Z", now), "2 hours ago")
	gt.Equal(t, cli.RelativeTime("not a time", now), "not a time")
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(path, []byte("CODESEEKER_TEST_VALUE=from-file\n"), 0600)).Required()
		t.Setenv("CODESEEKER_ENV_FILE", path)
		t.Setenv("CODESEEKER_TEST_VALUE", "")
		gt.NoError(t, os.Unsetenv("CODESEEKER_TEST_VALUE")).Required()

		gt.NoError(t, cli.LoadEnvFile()).Required()
		gt.Equal(t, os.Getenv("CODESEEKER_TEST_VALUE"), "from-file")
	})

	t.Run("process environment wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(path, []byte("CODESEEKER_TEST_VALUE=from-file\n"), 0600)).Required()
		t.Setenv("CODESEEKER_ENV_FILE", path)
		t.Setenv("CODESEEKER_TEST_VALUE", "from-env")

		gt.NoError(t, cli.LoadEnvFile()).Required()
		gt.Equal(t, os.Getenv("CODESEEKER_TEST_VALUE"), "from-env")
	})

	t.Run("explicit file must exist", func(t *testing.T) {
		t.Setenv("CODESEEKER_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		gt.Error(t, cli.LoadEnvFile())
	})
}
