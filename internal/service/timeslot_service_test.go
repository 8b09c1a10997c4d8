package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jadwalku/jadwal-api/internal/models"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

type mockTimeSlotRepo struct {
	slots        []models.TimeSlot
	createCalls  int
	reorderedIDs []string
}

func (m *mockTimeSlotRepo) List(ctx context.Context) ([]models.TimeSlot, error) {
	return m.slots, nil
}

func (m *mockTimeSlotRepo) FindByID(ctx context.Context, id string) (*models.TimeSlot, error) {
	for i := range m.slots {
		if m.slots[i].ID == id {
			return &m.slots[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockTimeSlotRepo) Create(ctx context.Context, slot *models.TimeSlot) error {
	m.createCalls++
	slot.ID = "slot-new"
	return nil
}

func (m *mockTimeSlotRepo) Update(ctx context.Context, slot *models.TimeSlot) error {
	return nil
}

func (m *mockTimeSlotRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (m *mockTimeSlotRepo) Reorder(ctx context.Context, ids []string) error {
	m.reorderedIDs = ids
	return nil
}

func TestTimeSlotServiceResolveDefault(t *testing.T) {
	svc := NewTimeSlotService(&mockTimeSlotRepo{}, nil, zap.NewNop())

	set, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SlotSourceDefault, set.Source)
	assert.Len(t, set.Slots, 9)
	assert.Equal(t, "07:30", set.Slots[0].StartTime)
}

func TestTimeSlotServiceResolveCustom(t *testing.T) {
	repo := &mockTimeSlotRepo{slots: []models.TimeSlot{
		{ID: "slot-1", Kind: models.SlotKindLesson, JP: 1, StartTime: "08:00", EndTime: "09:00", Order: 1},
	}}
	svc := NewTimeSlotService(repo, nil, zap.NewNop())

	set, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SlotSourceCustom, set.Source)
	assert.Len(t, set.Slots, 1)
}

func TestTimeSlotServiceCreateBreakRequiresName(t *testing.T) {
	svc := NewTimeSlotService(&mockTimeSlotRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), TimeSlotRequest{
		Kind: models.SlotKindBreak, StartTime: "09:45", EndTime: "10:00",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestTimeSlotServiceCreateRejectsInvertedInterval(t *testing.T) {
	svc := NewTimeSlotService(&mockTimeSlotRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), TimeSlotRequest{
		Kind: models.SlotKindLesson, JP: 1, StartTime: "10:00", EndTime: "09:00",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}

func TestTimeSlotServiceCreateRejectsMalformedClock(t *testing.T) {
	svc := NewTimeSlotService(&mockTimeSlotRepo{}, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), TimeSlotRequest{
		Kind: models.SlotKindLesson, JP: 1, StartTime: "7h30", EndTime: "08:15",
	})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrMalformedInput))
}

func TestTimeSlotServiceCreateLesson(t *testing.T) {
	repo := &mockTimeSlotRepo{}
	svc := NewTimeSlotService(repo, nil, zap.NewNop())

	slot, err := svc.Create(context.Background(), TimeSlotRequest{
		Kind: models.SlotKindLesson, JP: 1, StartTime: "07:30", EndTime: "08:15", Order: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, "slot-new", slot.ID)
	assert.Empty(t, slot.Name)
}

func TestTimeSlotServiceReorderValidation(t *testing.T) {
	repo := &mockTimeSlotRepo{}
	svc := NewTimeSlotService(repo, nil, zap.NewNop())

	err := svc.Reorder(context.Background(), nil)
	require.Error(t, err)

	err = svc.Reorder(context.Background(), []string{"slot-1", "slot-1"})
	require.Error(t, err)
	assert.Nil(t, repo.reorderedIDs)

	err = svc.Reorder(context.Background(), []string{"slot-2", "slot-1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"slot-2", "slot-1"}, repo.reorderedIDs)
}

func TestTimeSlotServiceCurrent(t *testing.T) {
	svc := NewTimeSlotService(&mockTimeSlotRepo{}, nil, zap.NewNop())
	// Monday 08:00 falls inside the first default lesson.
	svc.now = func() time.Time {
		return time.Date(2023, time.January, 2, 8, 0, 0, 0, time.UTC)
	}

	status, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Day)
	assert.Equal(t, "Senin", status.DayName)
	assert.True(t, status.SchoolHours)
	require.NotNil(t, status.Slot)
	assert.Equal(t, 1, status.Slot.JP)
	assert.Equal(t, "JP 1 (07:30 - 08:15)", status.SlotLabel)
	assert.Equal(t, models.SlotSourceDefault, status.Source)
}

func TestTimeSlotServiceCurrentOutsideHours(t *testing.T) {
	svc := NewTimeSlotService(&mockTimeSlotRepo{}, nil, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2023, time.January, 2, 18, 0, 0, 0, time.UTC)
	}

	status, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, status.SchoolHours)
	assert.Nil(t, status.Slot)
	assert.Empty(t, status.SlotLabel)
}
