package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	"github.com/jadwalku/jadwal-api/internal/timetable"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

type settingRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

// SettingService manages application settings, currently only the load
// counting policy.
type SettingService struct {
	repo   settingRepository
	logger *zap.Logger
}

// NewSettingService constructs a SettingService.
func NewSettingService(repo settingRepository, logger *zap.Logger) *SettingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingService{repo: repo, logger: logger}
}

// GetPolicy returns the active counting policy, falling back to per-class
// when no setting row exists yet.
func (s *SettingService) GetPolicy(ctx context.Context) (timetable.Policy, error) {
	setting, err := s.repo.Get(ctx, models.SettingJPCalculationMethod)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return timetable.PolicyPerClass, nil
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}

	policy, err := timetable.ParsePolicy(setting.Value)
	if err != nil {
		// A bad stored value should not break reports.
		s.logger.Warn("stored policy is invalid, using per-class",
			zap.String("value", setting.Value))
		return timetable.PolicyPerClass, nil
	}
	return policy, nil
}

// UpdatePolicy persists a new counting policy.
func (s *SettingService) UpdatePolicy(ctx context.Context, raw string) (timetable.Policy, error) {
	policy, err := timetable.ParsePolicy(raw)
	if err != nil {
		return "", err
	}
	if err := s.repo.Upsert(ctx, models.SettingJPCalculationMethod, string(policy)); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store settings")
	}
	return policy, nil
}
