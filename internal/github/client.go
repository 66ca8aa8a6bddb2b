// Package github is a minimal client for the repository-hosting API used
// by the evidence compiler: listing a user's repositories and
// approximating per-repository commit counts.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.github.com"

// DefaultProbeTimeout bounds the per-repository commit-count probe so a
// slow upstream cannot stall the whole pipeline.
const DefaultProbeTimeout = 10 * time.Second

// acceptHeader pins the API version.
const acceptHeader = "application/vnd.github.v3+json"

// maxReposPerPage is the listing page size; the compiler never needs more
// than one page.
const maxReposPerPage = 100

// Error represents a failed API call.
type Error struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("github api error for %s: status %d: %s", e.URL, e.StatusCode, e.Body)
}

// Repo is the slice of the repository payload the compiler consumes.
type Repo struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Stars         int    `json:"stargazers_count"`
	Language      string `json:"language"`
	Fork          bool   `json:"fork"`
	DefaultBranch string `json:"default_branch"`
}

// Config holds client construction options. Credentials are passed per
// call, not stored; the base URL is injected so tests can point the client
// at a local server.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	ProbeTimeout time.Duration
}

// Client calls the repository-hosting API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	probeTimeout time.Duration
}

// NewClient creates a client, filling unset config fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.ProbeTimeout == 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		httpClient:   cfg.HTTPClient,
		probeTimeout: cfg.ProbeTimeout,
	}
}

// get performs an authenticated GET and returns the response. The caller
// owns the body.
func (c *Client) get(ctx context.Context, token, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// ListRepos fetches up to 100 of the token owner's repositories, most
// recently updated first.
func (c *Client) ListRepos(ctx context.Context, token string) ([]Repo, error) {
	url := fmt.Sprintf("%s/user/repos?per_page=%d&sort=updated", c.baseURL, maxReposPerPage)

	resp, err := c.get(ctx, token, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &Error{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to decode repo list: %w", err)
	}
	return repos, nil
}

// lastPagePattern extracts the last page number from a Link header,
// e.g. <...commits?per_page=1&page=347>; rel="last".
var lastPagePattern = regexp.MustCompile(`page=(\d+)>; rel="last"`)

// CommitCount approximates a repository's total commits by requesting a
// single-commit page and reading the last page number from the pagination
// Link header. Repositories small enough to fit one page have no "last"
// link and count as 1. The call carries its own short timeout; callers
// treat any error as a zero count and continue.
func (c *Client) CommitCount(ctx context.Context, token, fullName string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/repos/%s/commits?per_page=1", c.baseURL, fullName)

	resp, err := c.get(ctx, token, url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return 0, &Error{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	link := resp.Header.Get("Link")
	match := lastPagePattern.FindStringSubmatch(link)
	if match == nil {
		return 1, nil
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return 1, nil
	}
	return count, nil
}
