package client

import (
	"context"
	"net/http"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/register", JSON: req, Anonymous: true}, &out)
	return out, err
}

// Login exchanges credentials for a token pair. The pair is returned, not
// stored; the caller decides when to persist it.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	var out models.TokenPair
	err := c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/login",
		Multipart: &Multipart{Fields: []Field{
			{Name: "username", Value: username},
			{Name: "password", Value: password},
		}},
		Anonymous: true,
	}, &out)
	return out, err
}

// Refresh forces a token refresh using the stored refresh token.
func (c *HTTPClient) Refresh(ctx context.Context) error {
	_, err := c.refreshAfter(ctx, "")
	return err
}

// Logout invalidates the session server-side. It does not touch stored tokens.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: "/logout"}, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.Do(ctx, Request{Path: "/profile"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.Do(ctx, Request{Path: "/profile"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.Do(ctx, Request{Method: http.MethodPut, Path: "/profile", JSON: upd}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
