package models

import "time"

// Department groups programs and staff under one academic unit.
type Department struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"`
	HodID       *int64    `json:"hodId,omitempty" db:"hod_id"` // head of department, staff reference
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Hod *Staff `json:"hod,omitempty"`
}
