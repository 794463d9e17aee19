package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*model.Appointment)}
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.New()
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, errors.NewNotFound("appointment")
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	if _, ok := f.appointments[a.ID]; !ok {
		return errors.NewNotFound("appointment")
	}
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.appointments[id]; !ok {
		return errors.NewNotFound("appointment")
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.ClinicID != clinicID {
			continue
		}
		if filters != nil && filters.DoctorID != uuid.Nil && a.DoctorID != filters.DoctorID {
			continue
		}
		if filters != nil && filters.PatientID != uuid.Nil && a.PatientID != filters.PatientID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakePatientGetter struct {
	patients map[uuid.UUID]*model.Patient
}

func (f *fakePatientGetter) Create(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakePatientGetter) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, errors.NewNotFound("patient")
	}
	return p, nil
}
func (f *fakePatientGetter) Update(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakePatientGetter) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakePatientGetter) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	return nil, nil
}

type fakeDoctorGetter struct {
	doctors map[uuid.UUID]*model.Doctor
}

func (f *fakeDoctorGetter) Create(ctx context.Context, d *model.Doctor) error { return nil }
func (f *fakeDoctorGetter) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, errors.NewNotFound("doctor")
	}
	return d, nil
}
func (f *fakeDoctorGetter) Update(ctx context.Context, d *model.Doctor) error { return nil }
func (f *fakeDoctorGetter) Delete(ctx context.Context, id uuid.UUID) error    { return nil }
func (f *fakeDoctorGetter) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	return nil, nil
}

type fixture struct {
	svc      *Service
	repo     *fakeAppointmentRepo
	clinicID uuid.UUID
	patient  *model.Patient
	doctor   *model.Doctor
}

func newFixture() *fixture {
	clinicID := uuid.New()
	patient := &model.Patient{ClinicID: clinicID, Name: "Ana Souza"}
	patient.ID = uuid.New()
	doctor := &model.Doctor{ClinicID: clinicID, Name: "Dr. Lima"}
	doctor.ID = uuid.New()

	repo := newFakeAppointmentRepo()
	svc := NewService(
		repo,
		&fakePatientGetter{patients: map[uuid.UUID]*model.Patient{patient.ID: patient}},
		&fakeDoctorGetter{doctors: map[uuid.UUID]*model.Doctor{doctor.ID: doctor}},
	)

	return &fixture{svc: svc, repo: repo, clinicID: clinicID, patient: patient, doctor: doctor}
}

func TestCreateAppointment(t *testing.T) {
	fx := newFixture()

	appt := &model.Appointment{
		Date:      time.Now().Add(24 * time.Hour),
		ClinicID:  fx.clinicID,
		PatientID: fx.patient.ID,
		DoctorID:  fx.doctor.ID,
	}
	require.NoError(t, fx.svc.CreateAppointment(context.Background(), appt))
	assert.NotEqual(t, uuid.Nil, appt.ID)
}

func TestCreateAppointmentDanglingReferences(t *testing.T) {
	fx := newFixture()

	t.Run("patient", func(t *testing.T) {
		err := fx.svc.CreateAppointment(context.Background(), &model.Appointment{
			Date:      time.Now(),
			ClinicID:  fx.clinicID,
			PatientID: uuid.New(),
			DoctorID:  fx.doctor.ID,
		})
		require.Error(t, err)
		assert.True(t, errors.IsConstraintViolation(err), "a dangling reference is a constraint violation, not a not-found")
		assert.False(t, errors.IsNotFound(err))
	})

	t.Run("doctor", func(t *testing.T) {
		err := fx.svc.CreateAppointment(context.Background(), &model.Appointment{
			Date:      time.Now(),
			ClinicID:  fx.clinicID,
			PatientID: fx.patient.ID,
			DoctorID:  uuid.New(),
		})
		require.Error(t, err)
		assert.True(t, errors.IsConstraintViolation(err))
	})

	assert.Empty(t, fx.repo.appointments)
}

func TestCreateAppointmentClinicMismatch(t *testing.T) {
	fx := newFixture()

	err := fx.svc.CreateAppointment(context.Background(), &model.Appointment{
		Date:      time.Now(),
		ClinicID:  uuid.New(),
		PatientID: fx.patient.ID,
		DoctorID:  fx.doctor.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsConstraintViolation(err))
	assert.Empty(t, fx.repo.appointments, "mismatched appointment must not be written")
}

func TestUpdateAppointmentOnlyDate(t *testing.T) {
	fx := newFixture()

	appt := &model.Appointment{
		Date:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ClinicID:  fx.clinicID,
		PatientID: fx.patient.ID,
		DoctorID:  fx.doctor.ID,
	}
	require.NoError(t, fx.svc.CreateAppointment(context.Background(), appt))

	newDate := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	updated, err := fx.svc.UpdateAppointment(context.Background(), appt.ID, &model.UpdateAppointmentRequest{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, newDate, updated.Date)
	assert.Equal(t, fx.patient.ID, updated.PatientID)
	assert.Equal(t, fx.doctor.ID, updated.DoctorID)
	assert.Equal(t, fx.clinicID, updated.ClinicID)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	fx := newFixture()

	date := time.Now()
	_, err := fx.svc.UpdateAppointment(context.Background(), uuid.New(), &model.UpdateAppointmentRequest{Date: &date})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListAppointmentsFilters(t *testing.T) {
	fx := newFixture()

	appt := &model.Appointment{
		Date:      time.Now(),
		ClinicID:  fx.clinicID,
		PatientID: fx.patient.ID,
		DoctorID:  fx.doctor.ID,
	}
	require.NoError(t, fx.svc.CreateAppointment(context.Background(), appt))

	matches, err := fx.svc.ListAppointments(context.Background(), fx.clinicID, &model.AppointmentFilters{DoctorID: fx.doctor.ID})
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	none, err := fx.svc.ListAppointments(context.Background(), fx.clinicID, &model.AppointmentFilters{DoctorID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, none)
}
