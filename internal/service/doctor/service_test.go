package doctor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uuid.UUID]*model.Doctor)}
}

func (f *fakeDoctorRepo) Create(ctx context.Context, doctor *model.Doctor) error {
	doctor.ID = uuid.New()
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, ok := f.doctors[id]
	if !ok {
		return nil, errors.NewNotFound("doctor")
	}
	copied := *doctor
	return &copied, nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, doctor *model.Doctor) error {
	if _, ok := f.doctors[doctor.ID]; !ok {
		return errors.NewNotFound("doctor")
	}
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.doctors[id]; !ok {
		return errors.NewNotFound("doctor")
	}
	delete(f.doctors, id)
	return nil
}

func (f *fakeDoctorRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	var out []*model.Doctor
	for _, d := range f.doctors {
		if d.ClinicID == clinicID {
			out = append(out, d)
		}
	}
	return out, nil
}

func validDoctor() *model.Doctor {
	return &model.Doctor{
		ClinicID:                uuid.New(),
		Name:                    "Dr. Lima",
		AvailableFromWeekDay:    1,
		AvailableToWeekDay:      5,
		AvailableFromTime:       "08:00:00",
		AvailableToTime:         "17:00:00",
		Specialty:               "Cardiology",
		AppointmentPriceInCents: 25000,
	}
}

func TestCreateDoctor(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	doctor := validDoctor()
	require.NoError(t, svc.CreateDoctor(context.Background(), doctor))
	assert.NotEqual(t, uuid.Nil, doctor.ID)
}

func TestCreateDoctorRequiredFields(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	cases := []struct {
		name   string
		mutate func(*model.Doctor)
	}{
		{"clinic_id", func(d *model.Doctor) { d.ClinicID = uuid.Nil }},
		{"name", func(d *model.Doctor) { d.Name = "" }},
		{"available_from_time", func(d *model.Doctor) { d.AvailableFromTime = "" }},
		{"available_to_time", func(d *model.Doctor) { d.AvailableToTime = "" }},
		{"specialty", func(d *model.Doctor) { d.Specialty = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doctor := validDoctor()
			tc.mutate(doctor)
			err := svc.CreateDoctor(context.Background(), doctor)
			require.Error(t, err)
			assert.True(t, errors.IsConstraintViolation(err))
		})
	}
}

func TestCreateDoctorWeekdaysUnchecked(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	doctor := validDoctor()
	doctor.AvailableFromWeekDay = -3
	doctor.AvailableToWeekDay = 42
	require.NoError(t, svc.CreateDoctor(context.Background(), doctor), "weekday ints carry no range constraint")
}

func TestUpdateDoctorPartial(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)

	doctor := validDoctor()
	require.NoError(t, svc.CreateDoctor(context.Background(), doctor))

	price := 30000
	specialty := "Dermatology"
	updated, err := svc.UpdateDoctor(context.Background(), doctor.ID, &model.UpdateDoctorRequest{
		AppointmentPriceInCents: &price,
		Specialty:               &specialty,
	})
	require.NoError(t, err)
	assert.Equal(t, price, updated.AppointmentPriceInCents)
	assert.Equal(t, specialty, updated.Specialty)
	assert.Equal(t, "Dr. Lima", updated.Name)
	assert.Equal(t, doctor.ClinicID, updated.ClinicID, "clinic reference is immutable through updates")
}

func TestUpdateDoctorRejectsEmptyRequired(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)

	doctor := validDoctor()
	require.NoError(t, svc.CreateDoctor(context.Background(), doctor))

	empty := ""
	_, err := svc.UpdateDoctor(context.Background(), doctor.ID, &model.UpdateDoctorRequest{Specialty: &empty})
	require.Error(t, err)
	assert.True(t, errors.IsConstraintViolation(err))

	current, err := svc.GetDoctor(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", current.Specialty)
}

func TestDeleteDoctorNotFound(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	err := svc.DeleteDoctor(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
