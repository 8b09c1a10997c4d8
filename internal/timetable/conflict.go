// Package timetable holds the scheduling core: conflict detection, teacher
// load calculation and time-slot resolution. Everything here is a pure
// function over snapshots handed in by the caller; the package performs no
// I/O and keeps no state, so every function is safe to call concurrently
// and cheap enough to re-run on every request.
package timetable

import (
	"sort"

	"github.com/jadwalku/jadwal-api/internal/models"
)

// ConflictKind discriminates what entity is double-booked.
type ConflictKind string

const (
	ConflictTeacher ConflictKind = "teacher"
	ConflictClass   ConflictKind = "class"
)

// Conflict groups the assignments that double-book one teacher or one class
// within a single day/JP slot. A schedule may appear in several conflicts
// at once; conflicts are overlapping views, not a partition.
type Conflict struct {
	Kind      ConflictKind      `json:"kind"`
	Day       int               `json:"day"`
	JP        int               `json:"jp"`
	Entity    string            `json:"entity"`
	Schedules []models.Schedule `json:"schedules"`
}

type slotKey struct {
	day int
	jp  int
}

// FindConflicts reports every teacher and class that is booked more than
// once in the same day/JP slot. Within each conflict the colliding
// schedules keep their input order. Result order is unspecified; callers
// that display the list should run it through SortConflicts.
func FindConflicts(schedules []models.Schedule) []Conflict {
	groups := make(map[slotKey][]models.Schedule)
	for _, s := range schedules {
		key := slotKey{day: s.Day, jp: s.JP}
		groups[key] = append(groups[key], s)
	}

	var conflicts []Conflict
	for key, group := range groups {
		teacherBuckets := make(map[string][]models.Schedule)
		var teacherOrder []string
		for _, s := range group {
			// A blank teacher name is "no teacher", never a collision key.
			if s.Teacher == "" {
				continue
			}
			if _, seen := teacherBuckets[s.Teacher]; !seen {
				teacherOrder = append(teacherOrder, s.Teacher)
			}
			teacherBuckets[s.Teacher] = append(teacherBuckets[s.Teacher], s)
		}
		for _, name := range teacherOrder {
			if bucket := teacherBuckets[name]; len(bucket) > 1 {
				conflicts = append(conflicts, Conflict{
					Kind:      ConflictTeacher,
					Day:       key.day,
					JP:        key.jp,
					Entity:    name,
					Schedules: bucket,
				})
			}
		}

		classBuckets := make(map[string][]models.Schedule)
		var classOrder []string
		for _, s := range group {
			for _, class := range s.Classes {
				if class == "" {
					continue
				}
				if _, seen := classBuckets[class]; !seen {
					classOrder = append(classOrder, class)
				}
				classBuckets[class] = append(classBuckets[class], s)
			}
		}
		for _, name := range classOrder {
			if bucket := classBuckets[name]; len(bucket) > 1 {
				conflicts = append(conflicts, Conflict{
					Kind:      ConflictClass,
					Day:       key.day,
					JP:        key.jp,
					Entity:    name,
					Schedules: bucket,
				})
			}
		}
	}

	return conflicts
}

// SortConflicts orders a conflict list for display: day, then JP, then kind
// (teacher before class), then entity name. Presentation concern only; the
// detector itself makes no ordering promise.
func SortConflicts(conflicts []Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.JP != b.JP {
			return a.JP < b.JP
		}
		if a.Kind != b.Kind {
			return a.Kind == ConflictTeacher
		}
		return a.Entity < b.Entity
	})
}
