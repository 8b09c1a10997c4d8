package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadwalku/jadwal-api/internal/models"
)

func TestFindConflictsTeacherDoubleBooking(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Subject: "Matematika", Teacher: "Ani", Classes: []string{"7A"}},
		{ID: "s2", Day: 1, JP: 1, Subject: "Fisika", Teacher: "Ani", Classes: []string{"7B"}},
	}

	conflicts := FindConflicts(schedules)
	require.Len(t, conflicts, 1)

	conflict := conflicts[0]
	assert.Equal(t, ConflictTeacher, conflict.Kind)
	assert.Equal(t, 1, conflict.Day)
	assert.Equal(t, 1, conflict.JP)
	assert.Equal(t, "Ani", conflict.Entity)
	require.Len(t, conflict.Schedules, 2)
	assert.Equal(t, "s1", conflict.Schedules[0].ID)
	assert.Equal(t, "s2", conflict.Schedules[1].ID)
}

func TestFindConflictsClassDoubleBooking(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 2, JP: 3, Teacher: "Ani", Classes: []string{"7A"}},
		{ID: "s2", Day: 2, JP: 3, Teacher: "Budi", Classes: []string{"7A"}},
	}

	conflicts := FindConflicts(schedules)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictClass, conflicts[0].Kind)
	assert.Equal(t, "7A", conflicts[0].Entity)
	assert.Len(t, conflicts[0].Schedules, 2)
}

func TestFindConflictsNoFalsePositives(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Ani", Classes: []string{"7A"}},
		{ID: "s2", Day: 1, JP: 1, Teacher: "Budi", Classes: []string{"7B"}},
		{ID: "s3", Day: 1, JP: 2, Teacher: "Ani", Classes: []string{"7A"}},
		{ID: "s4", Day: 2, JP: 1, Teacher: "Ani", Classes: []string{"7A"}},
	}

	assert.Empty(t, FindConflicts(schedules))
}

func TestFindConflictsBlankNamesNeverCollide(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "", Classes: []string{"7A"}},
		{ID: "s2", Day: 1, JP: 1, Teacher: "", Classes: []string{"7B"}},
		{ID: "s3", Day: 1, JP: 1, Teacher: "Cici", Classes: []string{"", ""}},
	}

	assert.Empty(t, FindConflicts(schedules))
}

func TestFindConflictsBlankTeacherStillEligibleForClassConflict(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "", Classes: []string{"7A"}},
		{ID: "s2", Day: 1, JP: 1, Teacher: "Budi", Classes: []string{"7A"}},
	}

	conflicts := FindConflicts(schedules)
	require.Len(t, conflicts, 1)
	assert.Equal(t, ConflictClass, conflicts[0].Kind)
	assert.Equal(t, "7A", conflicts[0].Entity)
}

func TestFindConflictsOverlappingMembership(t *testing.T) {
	// One schedule participates in a teacher conflict and two class
	// conflicts at the same time.
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Ani", Classes: []string{"7A", "7B"}},
		{ID: "s2", Day: 1, JP: 1, Teacher: "Ani", Classes: []string{"8A"}},
		{ID: "s3", Day: 1, JP: 1, Teacher: "Budi", Classes: []string{"7A"}},
		{ID: "s4", Day: 1, JP: 1, Teacher: "Cici", Classes: []string{"7B"}},
	}

	conflicts := FindConflicts(schedules)
	SortConflicts(conflicts)
	require.Len(t, conflicts, 3)

	assert.Equal(t, ConflictTeacher, conflicts[0].Kind)
	assert.Equal(t, "Ani", conflicts[0].Entity)
	assert.Equal(t, ConflictClass, conflicts[1].Kind)
	assert.Equal(t, "7A", conflicts[1].Entity)
	assert.Equal(t, ConflictClass, conflicts[2].Kind)
	assert.Equal(t, "7B", conflicts[2].Entity)

	for _, c := range conflicts {
		ids := make([]string, 0, len(c.Schedules))
		for _, s := range c.Schedules {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, "s1")
	}
}

func TestFindConflictsIdempotent(t *testing.T) {
	schedules := []models.Schedule{
		{ID: "s1", Day: 1, JP: 1, Teacher: "Ani", Classes: []string{"7A"}},
		{ID: "s2", Day: 1, JP: 1, Teacher: "Ani", Classes: []string{"7A"}},
		{ID: "s3", Day: 3, JP: 2, Teacher: "Budi", Classes: []string{"8C"}},
		{ID: "s4", Day: 3, JP: 2, Teacher: "Cici", Classes: []string{"8C"}},
	}

	first := FindConflicts(schedules)
	second := FindConflicts(schedules)
	SortConflicts(first)
	SortConflicts(second)
	assert.Equal(t, first, second)
}

func TestFindConflictsEmptyInput(t *testing.T) {
	assert.Empty(t, FindConflicts(nil))
	assert.Empty(t, FindConflicts([]models.Schedule{}))
}

func TestSortConflictsOrdering(t *testing.T) {
	conflicts := []Conflict{
		{Kind: ConflictClass, Day: 2, JP: 1, Entity: "7A"},
		{Kind: ConflictTeacher, Day: 1, JP: 4, Entity: "Budi"},
		{Kind: ConflictClass, Day: 1, JP: 4, Entity: "9B"},
		{Kind: ConflictTeacher, Day: 1, JP: 2, Entity: "Ani"},
	}

	SortConflicts(conflicts)

	assert.Equal(t, "Ani", conflicts[0].Entity)
	assert.Equal(t, "Budi", conflicts[1].Entity)
	assert.Equal(t, "9B", conflicts[2].Entity)
	assert.Equal(t, "7A", conflicts[3].Entity)
}
