package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadwalku/jadwal-api/internal/models"
)

func TestTimeSlotRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimeSlotRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, jp, start_time, end_time, break_name, sort_order, created_at, updated_at FROM time_slots ORDER BY sort_order ASC, created_at ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "jp", "start_time", "end_time", "break_name", "sort_order", "created_at", "updated_at"}))

	slots, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeSlotRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimeSlotRepository(db)

	mock.ExpectExec("INSERT INTO time_slots").
		WithArgs(sqlmock.AnyArg(), models.SlotKindLesson, 1, "07:30", "08:15", "", 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	slot := &models.TimeSlot{Kind: models.SlotKindLesson, JP: 1, StartTime: "07:30", EndTime: "08:15", Order: 1}
	require.NoError(t, repo.Create(context.Background(), slot))
	assert.NotEmpty(t, slot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeSlotRepositoryReorder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimeSlotRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE time_slots SET sort_order").
		WithArgs("b", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE time_slots SET sort_order").
		WithArgs("a", 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Reorder(context.Background(), []string{"b", "a"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSettingRepository(db)

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(models.SettingJPCalculationMethod, "perSession", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), models.SettingJPCalculationMethod, "perSession"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepositoryGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSettingRepository(db)

	rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
		AddRow(models.SettingJPCalculationMethod, "perClass", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT key, value, updated_at FROM settings WHERE key = $1")).
		WithArgs(models.SettingJPCalculationMethod).
		WillReturnRows(rows)

	setting, err := repo.Get(context.Background(), models.SettingJPCalculationMethod)
	require.NoError(t, err)
	assert.Equal(t, "perClass", setting.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}
