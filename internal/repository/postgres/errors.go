package postgres

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/agendadoc/clinic-api/pkg/errors"
)

// Postgres error codes that map onto the ConstraintViolation taxonomy.
const (
	pgErrNotNull    = "23502"
	pgErrForeignKey = "23503"
	pgErrUnique     = "23505"
	pgErrCheck      = "23514"
)

// classifyWriteError turns driver errors into classified AppErrors. Anything
// we cannot classify is wrapped verbatim so the caller still sees the cause.
func classifyWriteError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgErrNotNull:
			return errors.NewConstraintViolation(entity, pqErr.Column, "required").WithCause(err)
		case pgErrForeignKey:
			return errors.NewConstraintViolation(entity, "", constraintField(pqErr)).WithCause(err)
		case pgErrUnique:
			return errors.NewConstraintViolation(entity, "", "unique").WithCause(err)
		case pgErrCheck:
			return errors.NewConstraintViolation(entity, "", "enum").WithCause(err)
		}
	}

	return fmt.Errorf("failed to write %s: %w", entity, err)
}

// constraintField folds the FK constraint name into the violation detail so
// callers can tell which reference was dangling.
func constraintField(pqErr *pq.Error) string {
	if pqErr.Constraint != "" {
		return "foreign_key:" + pqErr.Constraint
	}
	return "foreign_key"
}

// classifyReadError maps missing rows to NotFound.
func classifyReadError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFound(entity).WithCause(err)
	}
	return fmt.Errorf("failed to read %s: %w", entity, err)
}

// requireRows converts a zero-rows-affected result into NotFound.
func requireRows(entity string, res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return errors.NewNotFound(entity)
	}
	return nil
}
