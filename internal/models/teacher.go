package models

import (
	"time"

	"github.com/lib/pq"
)

// Teacher represents an instructor record. Name doubles as the join key
// used by Schedule.Teacher, so it must stay unique.
type Teacher struct {
	ID        string         `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	TaskIDs   pq.StringArray `db:"task_ids" json:"task_ids"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
