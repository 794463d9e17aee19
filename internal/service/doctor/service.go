package doctor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type DoctorServicer interface {
	CreateDoctor(ctx context.Context, doctor *model.Doctor) error
	GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
	ListDoctors(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error)
}

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateDoctor(ctx context.Context, doctor *model.Doctor) error {
	if err := validateDoctor(doctor); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.AvatarImageURL != nil {
		doctor.AvatarImageURL = req.AvatarImageURL
	}
	if req.AvailableFromWeekDay != nil {
		doctor.AvailableFromWeekDay = *req.AvailableFromWeekDay
	}
	if req.AvailableToWeekDay != nil {
		doctor.AvailableToWeekDay = *req.AvailableToWeekDay
	}
	if req.AvailableFromTime != nil {
		doctor.AvailableFromTime = *req.AvailableFromTime
	}
	if req.AvailableToTime != nil {
		doctor.AvailableToTime = *req.AvailableToTime
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.AppointmentPriceInCents != nil {
		doctor.AppointmentPriceInCents = *req.AppointmentPriceInCents
	}

	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return doctor, nil
}

// DeleteDoctor also removes every appointment referencing the doctor.
func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}

func (s *Service) ListDoctors(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// validateDoctor enforces the required-field contract. The weekday ints are
// deliberately unchecked; no valid range is declared for them.
func validateDoctor(doctor *model.Doctor) error {
	if doctor.ClinicID == uuid.Nil {
		return errors.NewConstraintViolation("doctor", "clinic_id", "required")
	}
	if doctor.Name == "" {
		return errors.NewConstraintViolation("doctor", "name", "required")
	}
	if doctor.AvailableFromTime == "" {
		return errors.NewConstraintViolation("doctor", "available_from_time", "required")
	}
	if doctor.AvailableToTime == "" {
		return errors.NewConstraintViolation("doctor", "available_to_time", "required")
	}
	if doctor.Specialty == "" {
		return errors.NewConstraintViolation("doctor", "specialty", "required")
	}
	return nil
}
