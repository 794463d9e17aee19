package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
)

type appointmentRepository struct {
	BaseRepository
}

func NewAppointmentRepository(base BaseRepository) repository.AppointmentRepository {
	return &appointmentRepository{base}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, date, clinic_id, patient_id, doctor_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.Date,
		appointment.ClinicID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	return classifyWriteError("appointment", err)
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, date, clinic_id, patient_id, doctor_id,
			   created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, classifyReadError("appointment", err)
	}
	return &appointment, nil
}

// Update only ever touches the scheduled date; the three owning references
// and the lifecycle fields stay immutable.
func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET date = $1, updated_at = $2
		WHERE id = $3
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.Date,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return classifyWriteError("appointment", err)
	}
	return requireRows("appointment", result)
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return classifyWriteError("appointment", err)
	}
	return requireRows("appointment", result)
}

func (r *appointmentRepository) List(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT id, date, clinic_id, patient_id, doctor_id,
			   created_at, updated_at
		FROM appointments
		WHERE clinic_id = $1
	`
	args := []interface{}{clinicID}

	if filters != nil {
		if filters.DoctorID != uuid.Nil {
			query += fmt.Sprintf(" AND doctor_id = $%d", len(args)+1)
			args = append(args, filters.DoctorID)
		}
		if filters.PatientID != uuid.Nil {
			query += fmt.Sprintf(" AND patient_id = $%d", len(args)+1)
			args = append(args, filters.PatientID)
		}
		if !filters.StartDate.IsZero() {
			query += fmt.Sprintf(" AND date >= $%d", len(args)+1)
			args = append(args, filters.StartDate)
		}
		if !filters.EndDate.IsZero() {
			query += fmt.Sprintf(" AND date <= $%d", len(args)+1)
			args = append(args, filters.EndDate)
		}
	}

	query += " ORDER BY date ASC"

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, args...); err != nil {
		return nil, classifyReadError("appointment", err)
	}
	return appointments, nil
}
