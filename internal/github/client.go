package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST API
	DefaultBaseURL = "https://api.github.com"

	// MaxPerPage is the largest page size the list endpoints accept
	MaxPerPage = 100
)

// Client handles GitHub API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Repository represents a GitHub repository from the API
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     *string   `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Topics          []string  `json:"topics"`
	Language        *string   `json:"language"`
	OpenIssuesCount int       `json:"open_issues_count"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	Archived        bool      `json:"archived"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HTTPError captures a non-2xx response
type HTTPError struct {
	StatusCode int
	StatusText string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("github API returned status %d %s: %s", e.StatusCode, e.StatusText, string(e.Body))
}

// userAgentRoundTripper adds a User-Agent header; GitHub rejects requests without one
type userAgentRoundTripper struct {
	wrapped   http.RoundTripper
	userAgent string
}

func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", rt.userAgent)
	return rt.wrapped.RoundTrip(clone)
}

// NewClient creates a new GitHub API client. An empty baseURL selects the public API.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &userAgentRoundTripper{
				wrapped:   http.DefaultTransport,
				userAgent: userAgent,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListOrgRepositories fetches one page of an organization's repositories,
// most recently updated first. page is 1-based.
func (c *Client) ListOrgRepositories(ctx context.Context, org string, page, perPage int) ([]Repository, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	u := fmt.Sprintf("%s/orgs/%s/repos", c.baseURL, url.PathEscape(org))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("sort", "updated")
	q.Set("direction", "desc")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/vnd.github+json")

	var repos []Repository
	if err := c.do(req, &repos); err != nil {
		return nil, err
	}

	return repos, nil
}

// do executes the request and decodes the JSON body into v. Transport
// failures are returned unwrapped so callers can tell them apart from
// *HTTPError and decode errors.
func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
