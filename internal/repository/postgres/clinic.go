package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
)

type clinicRepository struct {
	BaseRepository
}

func NewClinicRepository(base BaseRepository) repository.ClinicRepository {
	return &clinicRepository{base}
}

func (r *clinicRepository) Create(ctx context.Context, clinic *model.Clinic) error {
	query := `
		INSERT INTO clinics (
			id, name, created_at, updated_at
		) VALUES ($1, $2, $3, $4)
	`
	clinic.ID = uuid.New()
	clinic.CreatedAt = time.Now()
	clinic.UpdatedAt = clinic.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		clinic.ID,
		clinic.Name,
		clinic.CreatedAt,
		clinic.UpdatedAt,
	)
	return classifyWriteError("clinic", err)
}

func (r *clinicRepository) Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`
	var clinic model.Clinic
	if err := r.db.GetContext(ctx, &clinic, query, id); err != nil {
		return nil, classifyReadError("clinic", err)
	}
	return &clinic, nil
}

func (r *clinicRepository) Update(ctx context.Context, clinic *model.Clinic) error {
	query := `
		UPDATE clinics
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	clinic.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		clinic.Name,
		clinic.UpdatedAt,
		clinic.ID,
	)
	if err != nil {
		return classifyWriteError("clinic", err)
	}
	return requireRows("clinic", result)
}

// Delete removes the clinic together with every dependent row. The dependent
// deletes are explicit rather than left to the FK cascade so that the whole
// blast radius is one visible unit of work.
func (r *clinicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		dependents := []string{
			`DELETE FROM appointments WHERE clinic_id = $1`,
			`DELETE FROM patients WHERE clinic_id = $1`,
			`DELETE FROM doctors WHERE clinic_id = $1`,
			`DELETE FROM users_to_clinics WHERE clinic_id = $1`,
		}
		for _, query := range dependents {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return classifyWriteError("clinic", err)
			}
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
		if err != nil {
			return classifyWriteError("clinic", err)
		}
		return requireRows("clinic", result)
	})
}

func (r *clinicRepository) List(ctx context.Context) ([]*model.Clinic, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM clinics
		ORDER BY created_at DESC
	`
	var clinics []*model.Clinic
	if err := r.db.SelectContext(ctx, &clinics, query); err != nil {
		return nil, classifyReadError("clinic", err)
	}
	return clinics, nil
}

func (r *clinicRepository) ListUsers(ctx context.Context, clinicID uuid.UUID) ([]*model.User, error) {
	query := `
		SELECT u.id, u.created_at, u.updated_at
		FROM users u
		JOIN users_to_clinics utc ON u.id = utc.user_id
		WHERE utc.clinic_id = $1
		ORDER BY utc.created_at
	`
	var users []*model.User
	if err := r.db.SelectContext(ctx, &users, query, clinicID); err != nil {
		return nil, classifyReadError("user", err)
	}
	return users, nil
}
