package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type PatientServicer interface {
	CreatePatient(ctx context.Context, patient *model.Patient) error
	GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
	ListPatients(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) error {
	if err := validatePatient(patient); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = *req.PhoneNumber
	}
	if req.Sex != nil {
		patient.Sex = model.PatientSex(*req.Sex)
	}

	if err := validatePatient(patient); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// DeletePatient also removes every appointment referencing the patient.
func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func validatePatient(patient *model.Patient) error {
	if patient.ClinicID == uuid.Nil {
		return errors.NewConstraintViolation("patient", "clinic_id", "required")
	}
	if patient.Name == "" {
		return errors.NewConstraintViolation("patient", "name", "required")
	}
	if patient.Email == "" {
		return errors.NewConstraintViolation("patient", "email", "required")
	}
	if patient.PhoneNumber == "" {
		return errors.NewConstraintViolation("patient", "phone_number", "required")
	}
	if !patient.Sex.Valid() {
		return errors.NewConstraintViolation("patient", "sex", "enum")
	}
	return nil
}
