package models

import "time"

// Designation is a staff job title (Professor, Registrar, ...).
type Designation struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
