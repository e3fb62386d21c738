package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/validate"
	"github.com/sachink160/multitool-client/internal/logging"
)

type AccountAPI interface {
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

// AccountService reads and edits the logged-in user's profile.
type AccountService struct {
	api    AccountAPI
	user   UserRefresher
	logger logging.Logger
}

func NewAccountService(api AccountAPI, user UserRefresher, logger logging.Logger) *AccountService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AccountService{api: api, user: user, logger: logger}
}

func (s *AccountService) Profile(ctx context.Context) (*models.UserProfile, error) {
	return s.api.Profile(ctx)
}

func (s *AccountService) Update(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	if err := validate.Struct(upd); err != nil {
		return nil, err
	}
	u, err := s.api.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	if s.user != nil {
		if err := s.user.Refresh(ctx); err != nil {
			s.logger.Warn(ctx, "failed to refresh user after profile update", "error", err)
		}
	}
	return u, nil
}
