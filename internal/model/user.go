package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identifier. It carries no profile attributes in this
// model; everything a user can administer hangs off its clinic links.
type User struct {
	Base
}

// UserClinic is the association row for the many-to-many User<->Clinic
// relationship. It has its own lifecycle fields and is keyed by the
// (user_id, clinic_id) pair.
type UserClinic struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ClinicID  uuid.UUID `db:"clinic_id" json:"clinic_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type LinkClinicRequest struct {
	ClinicID string `json:"clinic_id" binding:"required,uuid"`
}
