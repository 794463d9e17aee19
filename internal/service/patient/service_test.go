package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type fakePatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*model.Patient)}
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *model.Patient) error {
	patient.ID = uuid.New()
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, ok := f.patients[id]
	if !ok {
		return nil, errors.NewNotFound("patient")
	}
	copied := *patient
	return &copied, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, patient *model.Patient) error {
	if _, ok := f.patients[patient.ID]; !ok {
		return errors.NewNotFound("patient")
	}
	f.patients[patient.ID] = patient
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.patients[id]; !ok {
		return errors.NewNotFound("patient")
	}
	delete(f.patients, id)
	return nil
}

func (f *fakePatientRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	var out []*model.Patient
	for _, p := range f.patients {
		if p.ClinicID == clinicID {
			out = append(out, p)
		}
	}
	return out, nil
}

func validPatient() *model.Patient {
	return &model.Patient{
		ClinicID:    uuid.New(),
		Name:        "Ana Souza",
		Email:       "ana@example.com",
		PhoneNumber: "+5511999990000",
		Sex:         model.PatientSexFemale,
	}
}

func TestCreatePatient(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	patient := validPatient()
	require.NoError(t, svc.CreatePatient(context.Background(), patient))
	assert.NotEqual(t, uuid.Nil, patient.ID)
}

func TestCreatePatientRejectsUnknownSex(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	patient := validPatient()
	patient.Sex = "other"

	err := svc.CreatePatient(context.Background(), patient)
	require.Error(t, err)
	assert.True(t, errors.IsConstraintViolation(err))
	assert.Empty(t, repo.patients, "rejected create must leave no row behind")
}

func TestCreatePatientRequiredFields(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	cases := []struct {
		name   string
		mutate func(*model.Patient)
	}{
		{"clinic_id", func(p *model.Patient) { p.ClinicID = uuid.Nil }},
		{"name", func(p *model.Patient) { p.Name = "" }},
		{"email", func(p *model.Patient) { p.Email = "" }},
		{"phone_number", func(p *model.Patient) { p.PhoneNumber = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			patient := validPatient()
			tc.mutate(patient)
			err := svc.CreatePatient(context.Background(), patient)
			require.Error(t, err)
			assert.True(t, errors.IsConstraintViolation(err))
		})
	}
}

func TestUpdatePatientRejectsInvalidSex(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	patient := validPatient()
	require.NoError(t, svc.CreatePatient(context.Background(), patient))

	bad := "unknown"
	_, err := svc.UpdatePatient(context.Background(), patient.ID, &model.UpdatePatientRequest{Sex: &bad})
	require.Error(t, err)
	assert.True(t, errors.IsConstraintViolation(err))

	current, err := svc.GetPatient(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PatientSexFemale, current.Sex)
}

func TestUpdatePatientPartial(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	patient := validPatient()
	require.NoError(t, svc.CreatePatient(context.Background(), patient))

	newPhone := "+5511888880000"
	updated, err := svc.UpdatePatient(context.Background(), patient.ID, &model.UpdatePatientRequest{PhoneNumber: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, newPhone, updated.PhoneNumber)
	assert.Equal(t, "Ana Souza", updated.Name, "untouched fields survive a partial update")
}

func TestDeletePatientNotFound(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	err := svc.DeletePatient(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
