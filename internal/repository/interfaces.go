package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
)

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.User, error)
		LinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error
		UnlinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error
		ListClinics(ctx context.Context, userID uuid.UUID) ([]*model.Clinic, error)
	}

	ClinicRepository interface {
		Create(ctx context.Context, clinic *model.Clinic) error
		Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
		Update(ctx context.Context, clinic *model.Clinic) error
		// Delete removes the clinic and every doctor, patient, appointment
		// and user link under it as a single transaction.
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Clinic, error)
		ListUsers(ctx context.Context, clinicID uuid.UUID) ([]*model.User, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
		Update(ctx context.Context, doctor *model.Doctor) error
		// Delete removes the doctor and every appointment referencing it in
		// one transaction.
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) error
		// Delete removes the patient and every appointment referencing it in
		// one transaction.
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		MarkProcessed(ctx context.Context, id uuid.UUID) error
		MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
	}
)
