package model

import (
	"time"

	"github.com/google/uuid"
)

// Base contains the lifecycle fields shared by all persisted entities.
// IDs and timestamps are assigned by the repository layer; callers never
// supply them and updates never touch ID or CreatedAt.
type Base struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Pagination represents common pagination parameters
type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"page_size" form:"page_size"`
}
