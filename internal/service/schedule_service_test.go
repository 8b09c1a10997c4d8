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

type mockScheduleRepo struct {
	schedules   []models.Schedule
	createCalls int
}

func (m *mockScheduleRepo) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, int, error) {
	return m.schedules, len(m.schedules), nil
}

func (m *mockScheduleRepo) All(ctx context.Context) ([]models.Schedule, error) {
	return m.schedules, nil
}

func (m *mockScheduleRepo) FindByID(ctx context.Context, id string) (*models.Schedule, error) {
	for i := range m.schedules {
		if m.schedules[i].ID == id {
			return &m.schedules[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockScheduleRepo) Create(ctx context.Context, schedule *models.Schedule) error {
	m.createCalls++
	schedule.ID = "schedule-new"
	m.schedules = append(m.schedules, *schedule)
	return nil
}

func (m *mockScheduleRepo) Update(ctx context.Context, schedule *models.Schedule) error {
	return nil
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func TestScheduleServiceCreateAcceptsClash(t *testing.T) {
	repo := &mockScheduleRepo{schedules: []models.Schedule{
		{ID: "schedule-1", Day: 1, JP: 1, Subject: "Matematika", Teacher: "Budi", Classes: []string{"X-A"}},
	}}
	svc := NewScheduleService(repo, nil, zap.NewNop())

	created, err := svc.Create(context.Background(), ScheduleRequest{
		Day: 1, JP: 1, Subject: "Fisika", Teacher: "Budi", Classes: []string{"X-B"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "schedule-new", created.ID)

	conflicts, err := svc.Conflicts(context.Background())
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, timetable.ConflictTeacher, conflicts[0].Kind)
	assert.Equal(t, "Budi", conflicts[0].Entity)
}

func TestScheduleServiceCreateValidation(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewScheduleService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), ScheduleRequest{Day: 7, JP: 1, Subject: "Fisika"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
	assert.Zero(t, repo.createCalls)
}

func TestScheduleServiceCreateNormalizesClasses(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewScheduleService(repo, nil, zap.NewNop())

	created, err := svc.Create(context.Background(), ScheduleRequest{
		Day: 2, JP: 3, Subject: " Kimia ", Teacher: " Siti ", Classes: []string{" X-A ", "", "X-B"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Kimia", created.Subject)
	assert.Equal(t, "Siti", created.Teacher)
	assert.Equal(t, []string{"X-A", "X-B"}, []string(created.Classes))
}

func TestScheduleServiceConflictsEmpty(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewScheduleService(repo, nil, zap.NewNop())

	conflicts, err := svc.Conflicts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestScheduleServiceGetNotFound(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewScheduleService(repo, nil, zap.NewNop())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}
