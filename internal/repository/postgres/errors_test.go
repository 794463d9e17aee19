package postgres

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendadoc/clinic-api/pkg/errors"
)

func TestClassifyWriteError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		constraint string
	}{
		{
			name:       "not null",
			err:        &pq.Error{Code: pq.ErrorCode(pgErrNotNull), Column: "name"},
			constraint: "required",
		},
		{
			name:       "foreign key",
			err:        &pq.Error{Code: pq.ErrorCode(pgErrForeignKey), Constraint: "appointments_doctor_id_fkey"},
			constraint: "foreign_key:appointments_doctor_id_fkey",
		},
		{
			name:       "unique",
			err:        &pq.Error{Code: pq.ErrorCode(pgErrUnique)},
			constraint: "unique",
		},
		{
			name:       "check",
			err:        &pq.Error{Code: pq.ErrorCode(pgErrCheck)},
			constraint: "enum",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifyWriteError("appointment", tc.err)
			require.Error(t, err)
			assert.True(t, errors.IsConstraintViolation(err))

			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, "appointment", appErr.Entity)
			assert.Equal(t, tc.constraint, appErr.Constraint)
		})
	}
}

func TestClassifyWriteErrorKeepsCause(t *testing.T) {
	pqErr := &pq.Error{Code: pq.ErrorCode(pgErrUnique)}
	err := classifyWriteError("user_clinic", pqErr)

	var cause *pq.Error
	require.True(t, stderrors.As(err, &cause))
	assert.Equal(t, pqErr.Code, cause.Code)
}

func TestClassifyWriteErrorUnknownPassesThrough(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := classifyWriteError("clinic", cause)
	require.Error(t, err)
	assert.False(t, errors.IsConstraintViolation(err))
	assert.False(t, errors.IsNotFound(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestClassifyWriteErrorNil(t *testing.T) {
	assert.NoError(t, classifyWriteError("clinic", nil))
}

func TestClassifyReadError(t *testing.T) {
	err := classifyReadError("patient", sql.ErrNoRows)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "patient", appErr.Entity)

	other := classifyReadError("patient", fmt.Errorf("connection reset"))
	assert.False(t, errors.IsNotFound(other))
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

func TestRequireRows(t *testing.T) {
	assert.NoError(t, requireRows("doctor", fakeResult{rows: 1}))

	err := requireRows("doctor", fakeResult{rows: 0})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
