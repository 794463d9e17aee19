package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
)

type doctorRepository struct {
	BaseRepository
}

func NewDoctorRepository(base BaseRepository) repository.DoctorRepository {
	return &doctorRepository{base}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (
			id, clinic_id, name, avatar_image_url,
			available_from_week_day, available_to_week_day,
			available_from_time, available_to_time,
			specialty, appointment_price_in_cents,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	doctor.ID = uuid.New()
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = doctor.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.ClinicID,
		doctor.Name,
		doctor.AvatarImageURL,
		doctor.AvailableFromWeekDay,
		doctor.AvailableToWeekDay,
		doctor.AvailableFromTime,
		doctor.AvailableToTime,
		doctor.Specialty,
		doctor.AppointmentPriceInCents,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	)
	return classifyWriteError("doctor", err)
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, clinic_id, name, avatar_image_url,
			   available_from_week_day, available_to_week_day,
			   available_from_time, available_to_time,
			   specialty, appointment_price_in_cents,
			   created_at, updated_at
		FROM doctors
		WHERE id = $1
	`
	var doctor model.Doctor
	if err := r.db.GetContext(ctx, &doctor, query, id); err != nil {
		return nil, classifyReadError("doctor", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET name = $1, avatar_image_url = $2,
			available_from_week_day = $3, available_to_week_day = $4,
			available_from_time = $5, available_to_time = $6,
			specialty = $7, appointment_price_in_cents = $8,
			updated_at = $9
		WHERE id = $10
	`
	doctor.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		doctor.Name,
		doctor.AvatarImageURL,
		doctor.AvailableFromWeekDay,
		doctor.AvailableToWeekDay,
		doctor.AvailableFromTime,
		doctor.AvailableToTime,
		doctor.Specialty,
		doctor.AppointmentPriceInCents,
		doctor.UpdatedAt,
		doctor.ID,
	)
	if err != nil {
		return classifyWriteError("doctor", err)
	}
	return requireRows("doctor", result)
}

// Delete removes the doctor and every appointment referencing it as one
// transaction.
func (r *doctorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE doctor_id = $1`, id); err != nil {
			return classifyWriteError("doctor", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
		if err != nil {
			return classifyWriteError("doctor", err)
		}
		return requireRows("doctor", result)
	})
}

func (r *doctorRepository) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	query := `
		SELECT id, clinic_id, name, avatar_image_url,
			   available_from_week_day, available_to_week_day,
			   available_from_time, available_to_time,
			   specialty, appointment_price_in_cents,
			   created_at, updated_at
		FROM doctors
		WHERE clinic_id = $1
		ORDER BY name
	`
	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, clinicID); err != nil {
		return nil, classifyReadError("doctor", err)
	}
	return doctors, nil
}
