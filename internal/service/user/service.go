package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
)

type UserServicer interface {
	CreateUser(ctx context.Context) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context) ([]*model.User, error)
	LinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error
	UnlinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error
	ListClinics(ctx context.Context, userID uuid.UUID) ([]*model.Clinic, error)
}

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context) (*model.User, error) {
	user := &model.User{}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the user and its clinic links; clinics themselves and
// links belonging to other users are untouched.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// LinkClinic associates the user with a clinic. Both rows must already exist;
// a dangling reference surfaces as a ConstraintViolation from the repository.
func (s *Service) LinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error {
	if err := s.repo.LinkClinic(ctx, userID, clinicID); err != nil {
		return fmt.Errorf("failed to link user to clinic: %w", err)
	}
	return nil
}

func (s *Service) UnlinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error {
	if err := s.repo.UnlinkClinic(ctx, userID, clinicID); err != nil {
		return fmt.Errorf("failed to unlink user from clinic: %w", err)
	}
	return nil
}

func (s *Service) ListClinics(ctx context.Context, userID uuid.UUID) ([]*model.Clinic, error) {
	clinics, err := s.repo.ListClinics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user clinics: %w", err)
	}
	return clinics, nil
}
