package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	"github.com/jadwalku/jadwal-api/internal/timetable"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

type mockSettingRepo struct {
	values map[string]string
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.Setting{Key: key, Value: value}, nil
}

func (m *mockSettingRepo) Upsert(ctx context.Context, key, value string) error {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func TestSettingServicePolicyDefaultsToPerClass(t *testing.T) {
	svc := NewSettingService(&mockSettingRepo{}, zap.NewNop())

	policy, err := svc.GetPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, timetable.PolicyPerClass, policy)
}

func TestSettingServicePolicyRoundTrip(t *testing.T) {
	repo := &mockSettingRepo{}
	svc := NewSettingService(repo, zap.NewNop())

	updated, err := svc.UpdatePolicy(context.Background(), "perSession")
	require.NoError(t, err)
	assert.Equal(t, timetable.PolicyPerSession, updated)

	policy, err := svc.GetPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, timetable.PolicyPerSession, policy)
}

func TestSettingServiceRejectsUnknownPolicy(t *testing.T) {
	repo := &mockSettingRepo{}
	svc := NewSettingService(repo, zap.NewNop())

	_, err := svc.UpdatePolicy(context.Background(), "perStudent")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidArgument))
	assert.Empty(t, repo.values)
}

func TestSettingServiceCorruptStoredPolicyFallsBack(t *testing.T) {
	repo := &mockSettingRepo{values: map[string]string{
		models.SettingJPCalculationMethod: "garbage",
	}}
	svc := NewSettingService(repo, zap.NewNop())

	policy, err := svc.GetPolicy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, timetable.PolicyPerClass, policy)
}
