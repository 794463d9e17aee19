package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type AppointmentServicer interface {
	CreateAppointment(ctx context.Context, appointment *model.Appointment) error
	GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	ListAppointments(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error)
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository, doctorRepo repository.DoctorRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
	}
}

// CreateAppointment inserts an appointment after checking that its patient
// and doctor belong to the same clinic as the appointment. The schema does
// not carry this cross-entity rule, so it is enforced here.
func (s *Service) CreateAppointment(ctx context.Context, appointment *model.Appointment) error {
	if appointment.Date.IsZero() {
		return errors.NewConstraintViolation("appointment", "date", "required")
	}
	if appointment.ClinicID == uuid.Nil {
		return errors.NewConstraintViolation("appointment", "clinic_id", "required")
	}

	patient, err := s.patientRepo.Get(ctx, appointment.PatientID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NewConstraintViolation("appointment", "patient_id", "foreign_key")
		}
		return fmt.Errorf("failed to resolve patient: %w", err)
	}
	doctor, err := s.doctorRepo.Get(ctx, appointment.DoctorID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.NewConstraintViolation("appointment", "doctor_id", "foreign_key")
		}
		return fmt.Errorf("failed to resolve doctor: %w", err)
	}

	if patient.ClinicID != appointment.ClinicID {
		return errors.NewConstraintViolation("appointment", "patient_id", "clinic_mismatch")
	}
	if doctor.ClinicID != appointment.ClinicID {
		return errors.NewConstraintViolation("appointment", "doctor_id", "clinic_mismatch")
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

// UpdateAppointment reschedules. Only the date is mutable; the clinic,
// patient and doctor references are fixed at creation.
func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if appointment.Date.IsZero() {
		return nil, errors.NewConstraintViolation("appointment", "date", "required")
	}

	if err := s.repo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (s *Service) ListAppointments(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx, clinicID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
