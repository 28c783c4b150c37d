package github

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codeseeker/pkg/domain/interfaces"
	"github.com/secmon-lab/codeseeker/pkg/domain/model/errs"
	model "github.com/secmon-lab/codeseeker/pkg/domain/model/github"
	"github.com/secmon-lab/codeseeker/pkg/utils/errutil"
	"golang.org/x/oauth2"
)

// rawMediaType asks the contents API for the file body instead of a JSON
// document with base64 content.
const rawMediaType = "application/vnd.github.raw"

// Client calls the GitHub REST API. It is safe for concurrent use; the only
// state shared between calls is the static token given at construction.
type Client struct {
	gh *github.Client
}

var _ interfaces.GitHubClient = &Client{}

type options struct {
	token      string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

type Option func(*options)

// WithToken authorizes every request with a static bearer token. Without
// it requests are anonymous and subject to GitHub's lower rate limit.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithBaseURL replaces https://api.github.com/, e.g. for GitHub Enterprise
// (https://ghe.example.com/api/v3/) or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets the underlying HTTP client. A token set by WithToken
// is applied on top of its transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func New(opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := &http.Client{Timeout: o.timeout}
	if o.httpClient != nil {
		copied := *o.httpClient
		httpClient = &copied
		if o.timeout > 0 {
			httpClient.Timeout = o.timeout
		}
	}

	if o.token != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.token}),
			Base:   base,
		}
	}

	gh := github.NewClient(httpClient)
	if o.baseURL != "" {
		baseURL := o.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.TV(errutil.EndpointKey, o.baseURL))
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

// NewWithClient wraps an already configured go-github client.
func NewWithClient(gh *github.Client) *Client {
	return &Client{gh: gh}
}

func (x *Client) SearchRepositories(ctx context.Context, query string) (*model.SearchResult, error) {
	endpoint := "search/repositories?" + url.Values{"q": {query}}.Encode()

	req, err := x.gh.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request", goerr.TV(errutil.QueryKey, query))
	}

	var result model.SearchResult
	resp, err := x.gh.Do(ctx, req, &result)
	if err != nil {
		return nil, searchError(err, resp, query)
	}

	return &result, nil
}

func searchError(err error, resp *github.Response, query string) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	// go-github reports a body that cannot be decoded together with the
	// successful response.
	if status >= 200 && status < 300 {
		return goerr.Wrap(err, "failed to decode search result",
			goerr.T(errs.TagInvalidUpstream),
			goerr.TV(errutil.QueryKey, query),
			goerr.TV(errutil.HTTPStatusKey, status),
		)
	}

	return goerr.Wrap(&errs.UpstreamError{StatusCode: status, Err: err}, "failed to search repositories",
		goerr.T(errs.TagUpstream),
		goerr.TV(errutil.QueryKey, query),
		goerr.TV(errutil.HTTPStatusKey, status),
	)
}

func (x *Client) GetReadme(ctx context.Context, fullName string) (string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", goerr.Wrap(errs.ErrReadmeUnavailable, "invalid repository name",
			goerr.TV(errutil.RepositoryKey, fullName))
	}

	endpoint := "repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + "/readme"
	req, err := x.gh.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return "", goerr.Wrap(errors.Join(errs.ErrReadmeUnavailable, err), "failed to build readme request",
			goerr.TV(errutil.RepositoryKey, fullName))
	}
	req.Header.Set("Accept", rawMediaType)

	var body bytes.Buffer
	resp, err := x.gh.Do(ctx, req, &body)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return "", goerr.Wrap(errors.Join(errs.ErrReadmeUnavailable, err), "failed to get readme",
			goerr.TV(errutil.RepositoryKey, fullName),
			goerr.TV(errutil.HTTPStatusKey, status),
		)
	}

	return body.String(), nil
}
