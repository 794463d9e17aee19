package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/pkg/errors"
)

type link struct {
	userID   uuid.UUID
	clinicID uuid.UUID
}

type fakeUserRepo struct {
	users   map[uuid.UUID]*model.User
	clinics map[uuid.UUID]*model.Clinic
	links   []link
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uuid.UUID]*model.User),
		clinics: make(map[uuid.UUID]*model.Clinic),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.New()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NewNotFound("user")
	}
	return user, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return errors.NewNotFound("user")
	}
	delete(f.users, id)
	kept := f.links[:0]
	for _, l := range f.links {
		if l.userID != id {
			kept = append(kept, l)
		}
	}
	f.links = kept
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) LinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error {
	if _, ok := f.users[userID]; !ok {
		return errors.NewConstraintViolation("user_clinic", "user_id", "foreign_key")
	}
	if _, ok := f.clinics[clinicID]; !ok {
		return errors.NewConstraintViolation("user_clinic", "clinic_id", "foreign_key")
	}
	f.links = append(f.links, link{userID: userID, clinicID: clinicID})
	return nil
}

func (f *fakeUserRepo) UnlinkClinic(ctx context.Context, userID, clinicID uuid.UUID) error {
	for i, l := range f.links {
		if l.userID == userID && l.clinicID == clinicID {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFound("user_clinic")
}

func (f *fakeUserRepo) ListClinics(ctx context.Context, userID uuid.UUID) ([]*model.Clinic, error) {
	var out []*model.Clinic
	for _, l := range f.links {
		if l.userID == userID {
			out = append(out, f.clinics[l.clinicID])
		}
	}
	return out, nil
}

func (f *fakeUserRepo) addClinic(name string) *model.Clinic {
	clinic := &model.Clinic{Name: name}
	clinic.ID = uuid.New()
	f.clinics[clinic.ID] = clinic
	return clinic
}

func TestCreateUser(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	user, err := svc.CreateUser(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestLinkAndListClinics(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.CreateUser(context.Background())
	require.NoError(t, err)
	clinic := repo.addClinic("Downtown Clinic")

	require.NoError(t, svc.LinkClinic(context.Background(), user.ID, clinic.ID))

	clinics, err := svc.ListClinics(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, clinics, 1)
	assert.Equal(t, clinic.ID, clinics[0].ID)
}

func TestLinkClinicDanglingReference(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.CreateUser(context.Background())
	require.NoError(t, err)

	err = svc.LinkClinic(context.Background(), user.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsConstraintViolation(err))
}

func TestUnlinkClinicNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.CreateUser(context.Background())
	require.NoError(t, err)

	err = svc.UnlinkClinic(context.Background(), user.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteUserKeepsClinics(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	user, err := svc.CreateUser(context.Background())
	require.NoError(t, err)
	other, err := svc.CreateUser(context.Background())
	require.NoError(t, err)

	clinic := repo.addClinic("Shared Clinic")
	require.NoError(t, svc.LinkClinic(context.Background(), user.ID, clinic.ID))
	require.NoError(t, svc.LinkClinic(context.Background(), other.ID, clinic.ID))

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

	// Clinic and the other user's link survive
	assert.Contains(t, repo.clinics, clinic.ID)
	clinics, err := svc.ListClinics(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, clinics, 1)

	_, err = svc.GetUser(context.Background(), user.ID)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
