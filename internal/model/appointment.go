package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment references its clinic, patient and doctor, each through a
// required foreign key. Deleting any of the three removes the appointment.
type Appointment struct {
	Base
	Date      time.Time `db:"date" json:"date"`
	ClinicID  uuid.UUID `db:"clinic_id" json:"clinic_id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
}

type CreateAppointmentRequest struct {
	ClinicID  string    `json:"clinic_id" binding:"required,uuid"`
	PatientID string    `json:"patient_id" binding:"required,uuid"`
	DoctorID  string    `json:"doctor_id" binding:"required,uuid"`
	Date      time.Time `json:"date" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Date *time.Time `json:"date"`
}

type AppointmentFilters struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}
