package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaStatements is the authoritative table layout. Field names, types,
// nullability and cascade behavior are the wire contract; the ON DELETE
// CASCADE clauses are the storage-level backstop for the explicit
// transactional cascades the repositories perform.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clinics (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users_to_clinics (
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		clinic_id UUID NOT NULL REFERENCES clinics (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, clinic_id)
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id UUID PRIMARY KEY,
		clinic_id UUID NOT NULL REFERENCES clinics (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		avatar_image_url TEXT,
		available_from_week_day INTEGER NOT NULL,
		available_to_week_day INTEGER NOT NULL,
		available_from_time TIME NOT NULL,
		available_to_time TIME NOT NULL,
		specialty TEXT NOT NULL,
		appointment_price_in_cents INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id UUID PRIMARY KEY,
		clinic_id UUID NOT NULL REFERENCES clinics (id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		sex TEXT NOT NULL CHECK (sex IN ('male', 'female')),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id UUID PRIMARY KEY,
		date TIMESTAMPTZ NOT NULL,
		clinic_id UUID NOT NULL REFERENCES clinics (id) ON DELETE CASCADE,
		patient_id UUID NOT NULL REFERENCES patients (id) ON DELETE CASCADE,
		doctor_id UUID NOT NULL REFERENCES doctors (id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id UUID PRIMARY KEY,
		event_type TEXT NOT NULL,
		payload JSONB NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		error_message TEXT,
		retry_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		processed_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_doctors_clinic_id ON doctors (clinic_id)`,
	`CREATE INDEX IF NOT EXISTS idx_patients_clinic_id ON patients (clinic_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_clinic_id ON appointments (clinic_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments (doctor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments (patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status ON outbox_events (status, created_at)`,
}

// Migrate applies the schema. Statements are idempotent so the call is safe
// on every startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
