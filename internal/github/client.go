// Package github implements the repository service on top of the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client for a single repository
type Client struct {
	client *github.Client
	org    string
	repo   string
}

// NewClient creates a new GitHub client with token authentication
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// WithRepository returns a client bound to the given repository
func (c *Client) WithRepository(org, repo string) *Client {
	return &Client{
		client: c.client,
		org:    org,
		repo:   repo,
	}
}

// WithBaseURL points the client at a GitHub Enterprise server
func (c *Client) WithBaseURL(baseURL string) (*Client, error) {
	if baseURL == "" {
		return c, nil
	}

	enterprise, err := c.client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure API URL %s: %w", baseURL, err)
	}
	slog.Debug("Using GitHub Enterprise API", "url", enterprise.BaseURL.String())

	return &Client{
		client: enterprise,
		org:    c.org,
		repo:   c.repo,
	}, nil
}

// Repository returns the owner/name the client is bound to
func (c *Client) Repository() string {
	return c.org + "/" + c.repo
}

// paginatedList calls fetch for every page until the API reports no next page
func paginatedList[T any](fetch func(page int) ([]T, *github.Response, error)) ([]T, error) {
	var all []T
	page := 0

	for {
		items, resp, err := fetch(page)
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return all, nil
}
