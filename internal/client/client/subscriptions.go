package client

import (
	"context"
	"net/http"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func (c *HTTPClient) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	err := c.Do(ctx, Request{Path: "/plans"}, &out)
	return out, err
}

func (c *HTTPClient) Subscribe(ctx context.Context, planID string) (models.SubscribeResponse, error) {
	var out models.SubscribeResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/subscribe", JSON: models.SubscribeRequest{PlanID: planID}}, &out)
	return out, err
}

func (c *HTTPClient) CancelSubscription(ctx context.Context) (models.MessageResponse, error) {
	var out models.MessageResponse
	err := c.Do(ctx, Request{Method: http.MethodPost, Path: "/cancel"}, &out)
	return out, err
}

func (c *HTTPClient) CurrentSubscription(ctx context.Context) (*models.UserSubscription, error) {
	var out models.UserSubscription
	if err := c.Do(ctx, Request{Path: "/user/subscription"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SubscriptionHistory(ctx context.Context) ([]models.UserSubscription, error) {
	var out []models.UserSubscription
	err := c.Do(ctx, Request{Path: "/user/subscription/history"}, &out)
	return out, err
}

func (c *HTTPClient) Usage(ctx context.Context) (*models.UsageInfo, error) {
	var out models.UsageInfo
	if err := c.Do(ctx, Request{Path: "/user/usage"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CrmMetrics(ctx context.Context) (*models.CrmMetrics, error) {
	var out models.CrmMetrics
	if err := c.Do(ctx, Request{Path: "/crm/metrics"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
