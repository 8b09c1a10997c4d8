package models

import "time"

// Setting is a single key/value application setting row.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SettingJPCalculationMethod stores the active load counting policy.
const SettingJPCalculationMethod = "jp_calculation_method"
