package timetable

import (
	"fmt"

	"github.com/jadwalku/jadwal-api/internal/models"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

// Policy selects how teaching load is counted.
type Policy string

const (
	// PolicyPerClass counts one JP per class taught in a session; a session
	// with no recorded classes still counts as one.
	PolicyPerClass Policy = "perClass"
	// PolicyPerSession counts one JP per session regardless of class count.
	PolicyPerSession Policy = "perSession"
)

// ParsePolicy validates a raw policy string. Unknown values are an
// INVALID_ARGUMENT error, never a silent default.
func ParsePolicy(raw string) (Policy, error) {
	switch Policy(raw) {
	case PolicyPerClass:
		return PolicyPerClass, nil
	case PolicyPerSession:
		return PolicyPerSession, nil
	}
	return "", appErrors.Clone(appErrors.ErrInvalidArgument, fmt.Sprintf("unknown load policy %q", raw))
}

func (p Policy) validate() error {
	_, err := ParsePolicy(string(p))
	return err
}

// SchoolDays is the number of scheduled days per week (Monday..Saturday).
const SchoolDays = 6

// LoadSummary aggregates a teacher's full load picture.
type LoadSummary struct {
	TeachingLoad int           `json:"teaching_load"`
	TaskLoad     int           `json:"task_load"`
	GrandTotal   int           `json:"grand_total"`
	Tasks        []models.Task `json:"tasks"`
	ByDay        map[int]int   `json:"by_day"`
}

// TeachingLoad computes total instructional JP for the named teacher over
// the given assignment snapshot. Matching is by exact name. A teacher with
// no assignments has load 0.
func TeachingLoad(teacherName string, schedules []models.Schedule, policy Policy) (int, error) {
	if err := policy.validate(); err != nil {
		return 0, err
	}

	total := 0
	for _, s := range schedules {
		if s.Teacher != teacherName {
			continue
		}
		total += sessionUnits(s, policy)
	}
	return total, nil
}

// LoadByDay computes the same count split per school day. Every day 1..6 is
// present in the result, zero when the teacher is off.
func LoadByDay(teacherName string, schedules []models.Schedule, policy Policy) (map[int]int, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	byDay := make(map[int]int, SchoolDays)
	for day := 1; day <= SchoolDays; day++ {
		byDay[day] = 0
	}
	for _, s := range schedules {
		if s.Teacher != teacherName {
			continue
		}
		if s.Day < 1 || s.Day > SchoolDays {
			continue
		}
		byDay[s.Day] += sessionUnits(s, policy)
	}
	return byDay, nil
}

// TotalLoad combines teaching load with the fixed JP of the teacher's
// assigned tasks. Resolved tasks keep the input task order; task IDs with
// no matching task are dropped silently.
func TotalLoad(teacher models.Teacher, schedules []models.Schedule, tasks []models.Task, policy Policy) (*LoadSummary, error) {
	teaching, err := TeachingLoad(teacher.Name, schedules, policy)
	if err != nil {
		return nil, err
	}
	byDay, err := LoadByDay(teacher.Name, schedules, policy)
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]struct{}, len(teacher.TaskIDs))
	for _, id := range teacher.TaskIDs {
		assigned[id] = struct{}{}
	}

	resolved := make([]models.Task, 0, len(assigned))
	taskLoad := 0
	for _, task := range tasks {
		if _, ok := assigned[task.ID]; !ok {
			continue
		}
		resolved = append(resolved, task)
		taskLoad += task.JP
	}

	return &LoadSummary{
		TeachingLoad: teaching,
		TaskLoad:     taskLoad,
		GrandTotal:   teaching + taskLoad,
		Tasks:        resolved,
		ByDay:        byDay,
	}, nil
}

func sessionUnits(s models.Schedule, policy Policy) int {
	if policy == PolicyPerSession {
		return 1
	}
	if n := len(s.Classes); n > 0 {
		return n
	}
	// Zero recorded classes is not valid steady-state data, but it still
	// counts as one unit rather than vanishing from the total.
	return 1
}
