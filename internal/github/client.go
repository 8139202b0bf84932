package github

import (
	"context"
	"io"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/firstmatch/gh-firstmatch/pkg/models"
)

const defaultTimeout = 10 * time.Second

// restClient is the slice of go-gh's REST client the fetcher needs.
// Tests substitute a fake.
type restClient interface {
	DoWithContext(ctx context.Context, method string, path string, body io.Reader, response interface{}) error
}

// Client fetches candidate issues from the GitHub search API
type Client struct {
	timeout time.Duration
	newREST func(token string) (restClient, error)
}

// NewClient creates a new GitHub search client. The timeout bounds each
// per-keyword search call.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		timeout: timeout,
		newREST: newRESTClient,
	}
}

// newRESTClient builds a go-gh REST client. An explicit token wins;
// otherwise go-gh resolves auth from the environment and gh config.
func newRESTClient(token string) (restClient, error) {
	headers := map[string]string{"Accept": "application/vnd.github+json"}

	if token == "" {
		rest, err := api.NewRESTClient(api.ClientOptions{Headers: headers})
		if err != nil {
			return nil, err
		}
		return rest, nil
	}

	rest, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
		Headers:   headers,
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

// user represents a GitHub user from the API
type user struct {
	Login string `json:"login"`
}

// label represents a GitHub label from the API
type label struct {
	Name string `json:"name"`
}

// searchIssue represents a GitHub issue as returned by the search API
type searchIssue struct {
	ID            int64     `json:"id"`
	HTMLURL       string    `json:"html_url"`
	RepositoryURL string    `json:"repository_url"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	State         string    `json:"state"`
	User          user      `json:"user"`
	Labels        []label   `json:"labels"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// toModel converts an API search item to models.Issue
func (si *searchIssue) toModel() *models.Issue {
	labels := make([]string, len(si.Labels))
	for j, l := range si.Labels {
		labels[j] = l.Name
	}

	return &models.Issue{
		ID:        si.ID,
		URL:       si.HTMLURL,
		RepoURL:   si.RepositoryURL,
		Title:     si.Title,
		Body:      si.Body,
		State:     si.State,
		Labels:    labels,
		Author:    si.User.Login,
		CreatedAt: si.CreatedAt,
		UpdatedAt: si.UpdatedAt,
	}
}
