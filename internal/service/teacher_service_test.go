package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

type mockTeacherRepo struct {
	teachers    []models.Teacher
	existing    map[string]bool
	createCalls int
	updateCalls int
	deleteCalls int
}

func (m *mockTeacherRepo) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, int, error) {
	return m.teachers, len(m.teachers), nil
}

func (m *mockTeacherRepo) All(ctx context.Context) ([]models.Teacher, error) {
	return m.teachers, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	for i := range m.teachers {
		if m.teachers[i].ID == id {
			return &m.teachers[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	return m.existing[name], nil
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	m.createCalls++
	teacher.ID = "teacher-new"
	return nil
}

func (m *mockTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error {
	m.updateCalls++
	return nil
}

func (m *mockTeacherRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	return nil
}

func TestTeacherServiceCreate(t *testing.T) {
	repo := &mockTeacherRepo{existing: map[string]bool{}}
	svc := NewTeacherService(repo, nil, zap.NewNop())

	teacher, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "  Budi Santoso ", TaskIDs: []string{"task-1"}})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", teacher.Name)
	assert.Equal(t, "teacher-new", teacher.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestTeacherServiceCreateDuplicateName(t *testing.T) {
	repo := &mockTeacherRepo{existing: map[string]bool{"Budi Santoso": true}}
	svc := NewTeacherService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Name: "Budi Santoso"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrConflict))
	assert.Zero(t, repo.createCalls)
}

func TestTeacherServiceCreateValidation(t *testing.T) {
	repo := &mockTeacherRepo{existing: map[string]bool{}}
	svc := NewTeacherService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateTeacherRequest{Name: ""})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestTeacherServiceGetNotFound(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, nil, zap.NewNop())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
}

func TestTeacherServiceUpdateRename(t *testing.T) {
	repo := &mockTeacherRepo{
		teachers: []models.Teacher{{ID: "teacher-1", Name: "Budi Santoso"}},
		existing: map[string]bool{},
	}
	svc := NewTeacherService(repo, nil, zap.NewNop())

	teacher, err := svc.Update(context.Background(), "teacher-1", UpdateTeacherRequest{Name: "Budi S."})
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", teacher.Name)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestTeacherServiceDeleteNotFound(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, nil, zap.NewNop())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrNotFound))
	assert.Zero(t, repo.deleteCalls)
}
