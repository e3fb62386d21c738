package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/common"
)

const refreshKey = "refresh"

// refreshAfter returns an access token to retry with after stale was
// rejected. Concurrent callers share one in-flight refresh. The shared call
// is detached from the caller's cancellation; a caller whose ctx ends stops
// waiting and gets ctx.Err() while the refresh completes for the others.
func (c *HTTPClient) refreshAfter(ctx context.Context, stale string) (string, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.refreshGroup.DoChan(refreshKey, func() (any, error) {
		return c.refresh(detached, stale)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			c.logger.Debug(ctx, "joined in-flight token refresh")
		}
		return res.Val.(string), nil
	}
}

// refresh exchanges the stored refresh token for a new pair and persists it.
// Stored tokens are left untouched when the exchange fails. When the stored
// access token no longer equals stale it was already replaced by an earlier
// refresh and is returned without a network call. An empty stale always
// refreshes.
func (c *HTTPClient) refresh(ctx context.Context, stale string) (string, error) {
	pair, ok, err := c.store.Read(ctx)
	if err != nil {
		return "", err
	}
	if !ok || pair.RefreshToken == "" {
		return "", ErrNoRefreshToken
	}
	if stale != "" && pair.AccessToken != stale {
		return pair.AccessToken, nil
	}

	c.logger.Debug(ctx, "refreshing tokens")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL("/refresh", nil), nil)
	if err != nil {
		return "", fmt.Errorf("create refresh request: %w", err)
	}
	httpReq.Header.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+pair.RefreshToken)
	httpReq.Header.Set(common.RequestIDHeaderName, c.newRequestID())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", parseAPIError(resp)
	}

	var next models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&next); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if !next.Complete() {
		return "", common.ErrIncompletePair
	}
	if err := c.store.Save(ctx, next); err != nil {
		return "", fmt.Errorf("save refreshed tokens: %w", err)
	}

	c.logger.Info(ctx, "tokens refreshed")
	return next.AccessToken, nil
}
