package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadwalku/jadwal-api/internal/models"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

func budiSchedules() []models.Schedule {
	return []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Budi", Classes: []string{"7A", "7B"}},
		{ID: "s2", Day: 1, JP: 2, Teacher: "Budi", Classes: []string{"8A"}},
		{ID: "s3", Day: 4, JP: 3, Teacher: "Budi", Classes: []string{"9A", "9B", "9C"}},
		{ID: "s4", Day: 4, JP: 3, Teacher: "Ani", Classes: []string{"7C"}},
	}
}

func TestTeachingLoadPerClass(t *testing.T) {
	load, err := TeachingLoad("Budi", budiSchedules(), PolicyPerClass)
	require.NoError(t, err)
	assert.Equal(t, 6, load)
}

func TestTeachingLoadPerSession(t *testing.T) {
	load, err := TeachingLoad("Budi", budiSchedules(), PolicyPerSession)
	require.NoError(t, err)
	assert.Equal(t, 3, load)
}

func TestTeachingLoadZeroClassesCountsOne(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Budi", Classes: nil},
	}

	load, err := TeachingLoad("Budi", schedules, PolicyPerClass)
	require.NoError(t, err)
	assert.Equal(t, 1, load)
}

func TestTeachingLoadNoAssignments(t *testing.T) {
	load, err := TeachingLoad("Dedi", budiSchedules(), PolicyPerClass)
	require.NoError(t, err)
	assert.Equal(t, 0, load)
}

func TestTeachingLoadPoliciesAgreeForSingleClassData(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Budi", Classes: []string{"7A"}},
		{ID: "s2", Day: 2, JP: 5, Teacher: "Budi", Classes: []string{"7B"}},
		{ID: "s3", Day: 6, JP: 2, Teacher: "Budi", Classes: []string{"8C"}},
	}

	perClass, err := TeachingLoad("Budi", schedules, PolicyPerClass)
	require.NoError(t, err)
	perSession, err := TeachingLoad("Budi", schedules, PolicyPerSession)
	require.NoError(t, err)
	assert.Equal(t, perClass, perSession)
}

func TestTeachingLoadUnknownPolicy(t *testing.T) {
	_, err := TeachingLoad("Budi", budiSchedules(), Policy("byClass"))
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidArgument))
}

func TestParsePolicy(t *testing.T) {
	policy, err := ParsePolicy("perClass")
	require.NoError(t, err)
	assert.Equal(t, PolicyPerClass, policy)

	policy, err = ParsePolicy("perSession")
	require.NoError(t, err)
	assert.Equal(t, PolicyPerSession, policy)

	_, err = ParsePolicy("")
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidArgument))
}

func TestLoadByDay(t *testing.T) {
	byDay, err := LoadByDay("Budi", budiSchedules(), PolicyPerClass)
	require.NoError(t, err)

	require.Len(t, byDay, SchoolDays)
	assert.Equal(t, 3, byDay[1])
	assert.Equal(t, 0, byDay[2])
	assert.Equal(t, 0, byDay[3])
	assert.Equal(t, 3, byDay[4])
	assert.Equal(t, 0, byDay[5])
	assert.Equal(t, 0, byDay[6])
}

func TestTotalLoad(t *testing.T) {
	teacher := models.Teacher{ID: "t1", Name: "Budi", TaskIDs: []string{"task-1", "task-2"}}
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Budi", Classes: []string{"7A", "7B", "7C", "7D"}},
		{ID: "s2", Day: 2, JP: 2, Teacher: "Budi", Classes: []string{"8A", "8B", "8C"}},
		{ID: "s3", Day: 3, JP: 3, Teacher: "Budi", Classes: []string{"9A", "9B", "9C"}},
	}
	tasks := []models.Task{
		{ID: "task-1", Name: "Wali Kelas", JP: 2},
		{ID: "task-2", Name: "Pembina OSIS", JP: 3},
		{ID: "task-3", Name: "Kepala Lab", JP: 4},
	}

	summary, err := TotalLoad(teacher, schedules, tasks, PolicyPerClass)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TeachingLoad)
	assert.Equal(t, 5, summary.TaskLoad)
	assert.Equal(t, 15, summary.GrandTotal)
	require.Len(t, summary.Tasks, 2)
	assert.Equal(t, "Wali Kelas", summary.Tasks[0].Name)
	assert.Equal(t, "Pembina OSIS", summary.Tasks[1].Name)
	assert.Equal(t, 4, summary.ByDay[1])
}

func TestTotalLoadUnknownTaskIDsDropped(t *testing.T) {
	teacher := models.Teacher{ID: "t1", Name: "Budi", TaskIDs: []string{"missing", "task-1"}}
	tasks := []models.Task{{ID: "task-1", Name: "Wali Kelas", JP: 2}}

	summary, err := TotalLoad(teacher, nil, tasks, PolicyPerSession)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TeachingLoad)
	assert.Equal(t, 2, summary.TaskLoad)
	assert.Equal(t, 2, summary.GrandTotal)
	require.Len(t, summary.Tasks, 1)
}

func TestTotalLoadEmptyEverything(t *testing.T) {
	summary, err := TotalLoad(models.Teacher{Name: "Budi"}, nil, nil, PolicyPerClass)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.GrandTotal)
	assert.Empty(t, summary.Tasks)
}
