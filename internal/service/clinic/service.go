package clinic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type ClinicServicer interface {
	CreateClinic(ctx context.Context, clinic *model.Clinic) error
	GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
	UpdateClinic(ctx context.Context, id uuid.UUID, req *model.UpdateClinicRequest) (*model.Clinic, error)
	DeleteClinic(ctx context.Context, id uuid.UUID) error
	ListClinics(ctx context.Context) ([]*model.Clinic, error)
	ListUsers(ctx context.Context, clinicID uuid.UUID) ([]*model.User, error)
}

type Service struct {
	repo repository.ClinicRepository
}

func NewService(repo repository.ClinicRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateClinic(ctx context.Context, clinic *model.Clinic) error {
	if clinic.Name == "" {
		return errors.NewConstraintViolation("clinic", "name", "required")
	}

	if err := s.repo.Create(ctx, clinic); err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (s *Service) GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return clinic, nil
}

func (s *Service) UpdateClinic(ctx context.Context, id uuid.UUID, req *model.UpdateClinicRequest) (*model.Clinic, error) {
	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	if req.Name != nil {
		clinic.Name = *req.Name
	}
	if clinic.Name == "" {
		return nil, errors.NewConstraintViolation("clinic", "name", "required")
	}

	if err := s.repo.Update(ctx, clinic); err != nil {
		return nil, fmt.Errorf("failed to update clinic: %w", err)
	}
	return clinic, nil
}

// DeleteClinic removes the clinic and, transitively, all doctors, patients,
// appointments and user links under it.
func (s *Service) DeleteClinic(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete clinic: %w", err)
	}
	return nil
}

func (s *Service) ListClinics(ctx context.Context) ([]*model.Clinic, error) {
	clinics, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	return clinics, nil
}

func (s *Service) ListUsers(ctx context.Context, clinicID uuid.UUID) ([]*model.User, error) {
	users, err := s.repo.ListUsers(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinic users: %w", err)
	}
	return users, nil
}
