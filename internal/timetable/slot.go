package timetable

import (
	"fmt"
	"sort"
	"time"

	"github.com/jadwalku/jadwal-api/internal/models"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
)

// CurrentSlot resolves which configured slot contains the given wall-clock
// instant. Containment uses the half-open interval [start, end) so
// back-to-back slots never both match at the shared boundary. A (nil, nil)
// return means no slot contains the instant, which is a valid outcome
// outside school hours. An unparsable slot time is a MALFORMED_INPUT
// error; swallowing it would mask a configuration bug.
func CurrentSlot(slots []models.TimeSlot, now time.Time) (*models.TimeSlot, error) {
	minute := now.Hour()*60 + now.Minute()

	for i := range slots {
		start, end, err := slotMinutes(slots[i])
		if err != nil {
			return nil, err
		}
		if minute >= start && minute < end {
			match := slots[i]
			return &match, nil
		}
	}
	return nil, nil
}

// LessonSlots filters to lesson slots only, preserving input order.
func LessonSlots(slots []models.TimeSlot) []models.TimeSlot {
	lessons := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Kind == models.SlotKindLesson {
			lessons = append(lessons, slot)
		}
	}
	return lessons
}

// CurrentDay maps the platform weekday (Sunday=0 .. Saturday=6) onto the
// school scale 1..6 (Monday..Saturday). Sunday deliberately maps to Monday:
// there is no Sunday schedule, and callers always need some valid day to
// show by default.
func CurrentDay(now time.Time) int {
	day := int(now.Weekday())
	if day == 0 {
		return 1
	}
	return day
}

// SlotLabel formats a slot for display: "JP 3 (09:00 - 09:45)" for lessons,
// "Istirahat (09:45 - 10:00)" for breaks.
func SlotLabel(slot models.TimeSlot) string {
	if slot.Kind == models.SlotKindBreak {
		return fmt.Sprintf("%s (%s - %s)", slot.Name, slot.StartTime, slot.EndTime)
	}
	return fmt.Sprintf("JP %d (%s - %s)", slot.JP, slot.StartTime, slot.EndTime)
}

// SortSlots returns a copy ordered by Order ascending. Order values are not
// guaranteed unique, so the sort is stable: ties keep their input position.
func SortSlots(slots []models.TimeSlot) []models.TimeSlot {
	sorted := make([]models.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	return sorted
}

// IsSchoolHours reports whether now falls between the start of the first
// slot and the end of the last slot, end inclusive. Empty slot lists are
// never school hours.
func IsSchoolHours(slots []models.TimeSlot, now time.Time) (bool, error) {
	if len(slots) == 0 {
		return false, nil
	}
	sorted := SortSlots(slots)
	minute := now.Hour()*60 + now.Minute()

	start, _, err := slotMinutes(sorted[0])
	if err != nil {
		return false, err
	}
	_, end, err := slotMinutes(sorted[len(sorted)-1])
	if err != nil {
		return false, err
	}
	return minute >= start && minute <= end, nil
}

func slotMinutes(slot models.TimeSlot) (int, int, error) {
	start, err := MinutesOfDay(slot.StartTime)
	if err != nil {
		return 0, 0, appErrors.Wrap(err, appErrors.ErrMalformedInput.Code, appErrors.ErrMalformedInput.Status,
			fmt.Sprintf("time slot %s has a malformed start time", slot.ID))
	}
	end, err := MinutesOfDay(slot.EndTime)
	if err != nil {
		return 0, 0, appErrors.Wrap(err, appErrors.ErrMalformedInput.Code, appErrors.ErrMalformedInput.Status,
			fmt.Sprintf("time slot %s has a malformed end time", slot.ID))
	}
	return start, end, nil
}

// MinutesOfDay parses a strict "HH:MM" clock string into minutes since
// midnight.
func MinutesOfDay(raw string) (int, error) {
	if len(raw) != 5 || raw[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", raw)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM", raw)
		}
	}
	hours := int(raw[0]-'0')*10 + int(raw[1]-'0')
	mins := int(raw[3]-'0')*10 + int(raw[4]-'0')
	if hours > 23 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", raw)
	}
	return hours*60 + mins, nil
}
