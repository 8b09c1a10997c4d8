package timetable

import "github.com/jadwalku/jadwal-api/internal/models"

// defaultTimeSlots is the well-known school day: 7 lesson periods and 2
// breaks spanning 07:30-14:30. Printed schedules assume these exact
// boundaries, so the table must never drift.
var defaultTimeSlots = []models.TimeSlot{
	{ID: "default-0", Kind: models.SlotKindLesson, JP: 1, StartTime: "07:30", EndTime: "08:15", Order: 1},
	{ID: "default-1", Kind: models.SlotKindLesson, JP: 2, StartTime: "08:15", EndTime: "09:00", Order: 2},
	{ID: "default-2", Kind: models.SlotKindLesson, JP: 3, StartTime: "09:00", EndTime: "09:45", Order: 3},
	{ID: "default-3", Kind: models.SlotKindBreak, Name: "Istirahat", StartTime: "09:45", EndTime: "10:00", Order: 4},
	{ID: "default-4", Kind: models.SlotKindLesson, JP: 4, StartTime: "10:00", EndTime: "10:45", Order: 5},
	{ID: "default-5", Kind: models.SlotKindLesson, JP: 5, StartTime: "10:45", EndTime: "11:30", Order: 6},
	{ID: "default-6", Kind: models.SlotKindBreak, Name: "ISHOMA & Islamic Public Speaking", StartTime: "11:30", EndTime: "13:00", Order: 7},
	{ID: "default-7", Kind: models.SlotKindLesson, JP: 6, StartTime: "13:00", EndTime: "13:45", Order: 8},
	{ID: "default-8", Kind: models.SlotKindLesson, JP: 7, StartTime: "13:45", EndTime: "14:30", Order: 9},
}

// DefaultTimeSlots returns a fresh copy of the default table, used whenever
// no custom slot configuration exists. It is all-or-nothing: defaults are
// synthesized at read time and never merged with custom rows.
func DefaultTimeSlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, len(defaultTimeSlots))
	copy(slots, defaultTimeSlots)
	return slots
}
