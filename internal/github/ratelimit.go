package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alan/github-pr/cmd"
)

// RateLimit returns the remaining core API quota
func (c *Client) RateLimit(ctx context.Context) (*cmd.RateLimit, error) {
	slog.Debug("GitHub API: Getting rate limits")
	limits, _, err := c.client.RateLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate limits: %w", err)
	}

	core := limits.GetCore()
	if core == nil {
		return nil, fmt.Errorf("rate limit response has no core quota")
	}
	return &cmd.RateLimit{
		Remaining: core.Remaining,
		Limit:     core.Limit,
	}, nil
}
