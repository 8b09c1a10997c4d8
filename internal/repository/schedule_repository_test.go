package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadwalku/jadwal-api/internal/models"
)

func TestScheduleRepositoryListWithFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"id", "day", "jp", "subject", "teacher", "classes", "created_at", "updated_at"}).
		AddRow("s1", 1, 2, "Matematika", "Ani", pq.StringArray{"7A", "7B"}, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, day, jp, subject, teacher, classes, created_at, updated_at FROM schedules WHERE 1=1 AND day = $1 AND teacher = $2 ORDER BY day ASC, jp ASC LIMIT 50 OFFSET 0")).
		WithArgs(1, "Ani").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM schedules WHERE 1=1 AND day = $1 AND teacher = $2")).
		WithArgs(1, "Ani").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.ScheduleFilter{Day: 1, Teacher: "Ani"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, []string{"7A", "7B"}, []string(list[0].Classes))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	rows := sqlmock.NewRows([]string{"id", "day", "jp", "subject", "teacher", "classes", "created_at", "updated_at"}).
		AddRow("s1", 1, 1, "Fisika", "Budi", pq.StringArray{"8A"}, time.Now(), time.Now()).
		AddRow("s2", 1, 2, "Kimia", "Cici", pq.StringArray{"8A"}, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, day, jp, subject, teacher, classes, created_at, updated_at FROM schedules ORDER BY day ASC, jp ASC")).
		WillReturnRows(rows)

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("INSERT INTO schedules").
		WithArgs(sqlmock.AnyArg(), 2, 3, "Biologi", "Dedi", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	schedule := &models.Schedule{Day: 2, JP: 3, Subject: "Biologi", Teacher: "Dedi", Classes: pq.StringArray{"9A"}}
	require.NoError(t, repo.Create(context.Background(), schedule))
	assert.NotEmpty(t, schedule.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewScheduleRepository(db)

	mock.ExpectExec("DELETE FROM schedules").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
