package services

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/validate"
)

// AdminGate authorises admin-only screens.
type AdminGate interface {
	RequireAdmin() error
}

type CRMAPI interface {
	CrmMetrics(ctx context.Context) (*models.CrmMetrics, error)
}

// CRMService exposes aggregate business metrics to admins.
type CRMService struct {
	api  CRMAPI
	gate AdminGate
}

func NewCRMService(api CRMAPI, gate AdminGate) *CRMService {
	return &CRMService{api: api, gate: gate}
}

func (s *CRMService) Metrics(ctx context.Context) (*models.CrmMetrics, error) {
	if err := s.gate.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.api.CrmMetrics(ctx)
}

type SettingsAPI interface {
	ListSettings(ctx context.Context, includeInactive bool) ([]models.MasterSetting, error)
	CreateSetting(ctx context.Context, req models.MasterSettingCreate) (*models.MasterSetting, error)
	UpdateSetting(ctx context.Context, name string, upd models.MasterSettingUpdate) (*models.MasterSetting, error)
	DeleteSetting(ctx context.Context, name string) error
	ActivateSetting(ctx context.Context, name string) error
}

// SettingsService manages master settings. Every call requires an admin.
type SettingsService struct {
	api  SettingsAPI
	gate AdminGate
}

func NewSettingsService(api SettingsAPI, gate AdminGate) *SettingsService {
	return &SettingsService{api: api, gate: gate}
}

func (s *SettingsService) List(ctx context.Context, includeInactive bool) ([]models.MasterSetting, error) {
	if err := s.gate.RequireAdmin(); err != nil {
		return nil, err
	}
	return s.api.ListSettings(ctx, includeInactive)
}

// Create adds a setting and returns the refetched list.
func (s *SettingsService) Create(ctx context.Context, req models.MasterSettingCreate) ([]models.MasterSetting, error) {
	if err := s.gate.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if _, err := s.api.CreateSetting(ctx, req); err != nil {
		return nil, err
	}
	return s.api.ListSettings(ctx, true)
}

func (s *SettingsService) Update(ctx context.Context, name string, upd models.MasterSettingUpdate) ([]models.MasterSetting, error) {
	if err := s.gate.RequireAdmin(); err != nil {
		return nil, err
	}
	if _, err := s.api.UpdateSetting(ctx, name, upd); err != nil {
		return nil, err
	}
	return s.api.ListSettings(ctx, true)
}

func (s *SettingsService) Delete(ctx context.Context, name string) ([]models.MasterSetting, error) {
	if err := s.gate.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.api.DeleteSetting(ctx, name); err != nil {
		return nil, err
	}
	return s.api.ListSettings(ctx, true)
}

func (s *SettingsService) Activate(ctx context.Context, name string) ([]models.MasterSetting, error) {
	if err := s.gate.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := s.api.ActivateSetting(ctx, name); err != nil {
		return nil, err
	}
	return s.api.ListSettings(ctx, true)
}
