package models

import "time"

// Task represents a non-teaching duty carrying a fixed JP load, assignable
// to zero or more teachers via Teacher.TaskIDs.
type Task struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	JP        int       `db:"jp" json:"jp"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
