package models

import (
	"time"

	"github.com/lib/pq"
)

// Schedule represents one teaching assignment: a teacher teaching a subject
// to one or more classes simultaneously in one JP on one day (1=Monday ..
// 6=Saturday). Teacher and class references are by name, exactly matching
// the names stored on the master records.
type Schedule struct {
	ID        string         `db:"id" json:"id"`
	Day       int            `db:"day" json:"day"`
	JP        int            `db:"jp" json:"jp"`
	Subject   string         `db:"subject" json:"subject"`
	Teacher   string         `db:"teacher" json:"teacher"`
	Classes   pq.StringArray `db:"classes" json:"classes"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// ScheduleFilter describes query params for listing schedules.
type ScheduleFilter struct {
	Day      int
	JP       int
	Teacher  string
	Class    string
	Page     int
	PageSize int
}
