package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sachink160/multitool-client/internal/client/models"
)

const settingsPath = "/master-settings/"

func (c *HTTPClient) ListSettings(ctx context.Context, includeInactive bool) ([]models.MasterSetting, error) {
	var out []models.MasterSetting
	q := url.Values{"include_inactive": {strconv.FormatBool(includeInactive)}}
	err := c.Do(ctx, Request{Path: settingsPath, Query: q}, &out)
	return out, err
}

func (c *HTTPClient) CreateSetting(ctx context.Context, req models.MasterSettingCreate) (*models.MasterSetting, error) {
	var out models.MasterSetting
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: settingsPath, JSON: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateSetting(ctx context.Context, name string, upd models.MasterSettingUpdate) (*models.MasterSetting, error) {
	var out models.MasterSetting
	if err := c.Do(ctx, Request{Method: http.MethodPut, Path: settingsPath + url.PathEscape(name), JSON: upd}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteSetting(ctx context.Context, name string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: settingsPath + url.PathEscape(name)}, nil)
}

func (c *HTTPClient) ActivateSetting(ctx context.Context, name string) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: settingsPath + url.PathEscape(name) + "/activate"}, nil)
}
