package model

import (
	"github.com/google/uuid"
)

type PatientSex string

const (
	PatientSexMale   PatientSex = "male"
	PatientSexFemale PatientSex = "female"
)

// Valid reports whether s is one of the two allowed enum values.
func (s PatientSex) Valid() bool {
	return s == PatientSexMale || s == PatientSexFemale
}

type Patient struct {
	Base
	ClinicID    uuid.UUID  `db:"clinic_id" json:"clinic_id"`
	Name        string     `db:"name" json:"name"`
	Email       string     `db:"email" json:"email"`
	PhoneNumber string     `db:"phone_number" json:"phone_number"`
	Sex         PatientSex `db:"sex" json:"sex"`
}

type CreatePatientRequest struct {
	ClinicID    string `json:"clinic_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Sex         string `json:"sex" binding:"required,oneof=male female"`
}

type UpdatePatientRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Sex         *string `json:"sex" binding:"omitempty,oneof=male female"`
}
