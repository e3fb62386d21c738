package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/quota"
	"github.com/sachink160/multitool-client/internal/client/resource"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

type SubscriptionAPI interface {
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	Subscribe(ctx context.Context, planID string) (models.SubscribeResponse, error)
	CancelSubscription(ctx context.Context) (models.MessageResponse, error)
	CurrentSubscription(ctx context.Context) (*models.UserSubscription, error)
	SubscriptionHistory(ctx context.Context) ([]models.UserSubscription, error)
	Usage(ctx context.Context) (*models.UsageInfo, error)
}

// UserRefresher re-reads the current user after account changes.
type UserRefresher interface {
	Refresh(ctx context.Context) error
}

type SubscriptionService struct {
	api     SubscriptionAPI
	user    UserRefresher
	logger  logging.Logger
	Plans   *resource.Collection[models.SubscriptionPlan]
	usage   *snapshot[models.UsageInfo]
	current *snapshot[models.UserSubscription]
}

func NewSubscriptionService(api SubscriptionAPI, user UserRefresher, logger logging.Logger) *SubscriptionService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SubscriptionService{
		api:     api,
		user:    user,
		logger:  logger,
		Plans:   resource.NewCollection(api.ListPlans),
		usage:   newSnapshot(api.Usage),
		current: newSnapshot(api.CurrentSubscription),
	}
}

// Refresh loads plans and usage in parallel, then the current
// subscription. A user without a subscription has a nil Current.
func (s *SubscriptionService) Refresh(ctx context.Context) resource.SectionErrors {
	errs := resource.LoadSections(ctx, s.logger,
		resource.Section{Name: "plans", Load: s.Plans.Refresh},
		resource.Section{Name: "usage", Load: s.usage.Refresh},
	)
	if err := s.current.Refresh(ctx); err != nil {
		s.current.Reset()
	}
	return errs
}

func (s *SubscriptionService) Usage() *models.UsageInfo {
	return s.usage.Get()
}

func (s *SubscriptionService) Current() *models.UserSubscription {
	return s.current.Get()
}

// Gate returns the gate for feature from the latest usage snapshot.
func (s *SubscriptionService) Gate(feature quota.Feature) quota.Gate {
	return quota.FromUsage(s.usage.Get(), feature)
}

func (s *SubscriptionService) Subscribe(ctx context.Context, planID string) (models.SubscribeResponse, error) {
	if err := validate.Struct(models.SubscribeRequest{PlanID: planID}); err != nil {
		return models.SubscribeResponse{}, err
	}
	res, err := s.api.Subscribe(ctx, planID)
	if err != nil {
		return models.SubscribeResponse{}, err
	}
	s.afterChange(ctx)
	return res, nil
}

func (s *SubscriptionService) Cancel(ctx context.Context) (string, error) {
	res, err := s.api.CancelSubscription(ctx)
	if err != nil {
		return "", err
	}
	s.afterChange(ctx)
	return res.Message, nil
}

func (s *SubscriptionService) History(ctx context.Context) ([]models.UserSubscription, error) {
	return s.api.SubscriptionHistory(ctx)
}

func (s *SubscriptionService) afterChange(ctx context.Context) {
	s.Refresh(ctx)
	if s.user == nil {
		return
	}
	if err := s.user.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "failed to refresh user", "error", err)
	}
}
