package models

import "time"

// Time slot kinds.
const (
	SlotKindLesson = "lesson"
	SlotKindBreak  = "break"
)

// TimeSlot is one configured interval of the school day: either a numbered
// lesson period (JP set, Name empty) or a named break (Name set, JP zero).
// Display order follows Order ascending; ties keep their stored order.
type TimeSlot struct {
	ID        string    `db:"id" json:"id"`
	Kind      string    `db:"kind" json:"kind"`
	JP        int       `db:"jp" json:"jp,omitempty"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Name      string    `db:"break_name" json:"name,omitempty"`
	Order     int       `db:"sort_order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Slot set sources: a synthesized default table or administrator-managed rows.
const (
	SlotSourceDefault = "default"
	SlotSourceCustom  = "custom"
)

// TimeSlotSet tags a slot list with where it came from. Default slots are
// synthesized at read time and never persisted or mixed with custom rows.
type TimeSlotSet struct {
	Source string     `json:"source"`
	Slots  []TimeSlot `json:"slots"`
}
