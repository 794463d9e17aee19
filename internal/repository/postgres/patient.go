package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
)

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(base BaseRepository) repository.PatientRepository {
	return &patientRepository{base}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, clinic_id, name, email, phone_number, sex,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.ClinicID,
		patient.Name,
		patient.Email,
		patient.PhoneNumber,
		patient.Sex,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	return classifyWriteError("patient", err)
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, clinic_id, name, email, phone_number, sex,
			   created_at, updated_at
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, classifyReadError("patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients
		SET name = $1, email = $2, phone_number = $3, sex = $4, updated_at = $5
		WHERE id = $6
	`
	patient.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		patient.Name,
		patient.Email,
		patient.PhoneNumber,
		patient.Sex,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return classifyWriteError("patient", err)
	}
	return requireRows("patient", result)
}

// Delete removes the patient and every appointment referencing it as one
// transaction.
func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE patient_id = $1`, id); err != nil {
			return classifyWriteError("patient", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
		if err != nil {
			return classifyWriteError("patient", err)
		}
		return requireRows("patient", result)
	})
}

func (r *patientRepository) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	query := `
		SELECT id, clinic_id, name, email, phone_number, sex,
			   created_at, updated_at
		FROM patients
		WHERE clinic_id = $1
		ORDER BY name
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, clinicID); err != nil {
		return nil, classifyReadError("patient", err)
	}
	return patients, nil
}
