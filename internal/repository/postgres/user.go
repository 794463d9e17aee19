package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, created_at, updated_at)
		VALUES ($1, $2, $3)
	`
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	_, err := r.db.ExecContext(ctx, query, user.ID, user.CreatedAt, user.UpdatedAt)
	return classifyWriteError("user", err)
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, classifyReadError("user", err)
	}
	return &user, nil
}

// Delete removes the user and its clinic links. Clinics themselves are never
// touched; there is no cascade from users to clinics.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users_to_clinics WHERE user_id = $1`, id); err != nil {
			return classifyWriteError("user", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return classifyWriteError("user", err)
		}
		return requireRows("user", result)
	})
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT id, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	var users []*model.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, classifyReadError("user", err)
	}
	return users, nil
}

func (r *userRepository) LinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error {
	query := `
		INSERT INTO users_to_clinics (user_id, clinic_id, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
	`
	_, err := r.db.ExecContext(ctx, query, userID, clinicID, time.Now())
	return classifyWriteError("user_clinic", err)
}

func (r *userRepository) UnlinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error {
	query := `
		DELETE FROM users_to_clinics
		WHERE user_id = $1 AND clinic_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, userID, clinicID)
	if err != nil {
		return classifyWriteError("user_clinic", err)
	}
	return requireRows("user_clinic", result)
}

func (r *userRepository) ListClinics(ctx context.Context, userID uuid.UUID) ([]*model.Clinic, error) {
	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at
		FROM clinics c
		JOIN users_to_clinics utc ON c.id = utc.clinic_id
		WHERE utc.user_id = $1
		ORDER BY c.name
	`
	var clinics []*model.Clinic
	if err := r.db.SelectContext(ctx, &clinics, query, userID); err != nil {
		return nil, classifyReadError("clinic", err)
	}
	return clinics, nil
}
