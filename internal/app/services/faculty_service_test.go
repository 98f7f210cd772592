package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
)

type fakeFacultyStore struct {
	faculty map[int64]*models.Faculty
	logins  map[int64]string // facultyID -> password hash
	nextID  int64
}

func newFakeFacultyStore() *fakeFacultyStore {
	return &fakeFacultyStore{
		faculty: make(map[int64]*models.Faculty),
		logins:  make(map[int64]string),
		nextID:  100,
	}
}

func (f *fakeFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	if _, ok := f.faculty[faculty.FacultyID]; ok {
		return apperrors.NewCustomError(apperrors.ErrFacultyIDExists, "faculty_id already exists!")
	}
	f.faculty[faculty.FacultyID] = faculty
	return nil
}

func (f *fakeFacultyStore) CreateLogin(_ context.Context, facultyID int64, _, passwordHash string) (int64, error) {
	if _, ok := f.faculty[facultyID]; !ok {
		return 0, apperrors.ErrFacultyNotFound
	}
	f.logins[facultyID] = passwordHash
	f.nextID++
	return f.nextID, nil
}

func validFacultyRequest() *dto.AddFacultyRequest {
	return &dto.AddFacultyRequest{
		FacultyID:   1001,
		FullName:    "Prof. Sarah Johnson",
		Designation: "Assistant Professor",
		Gender:      "F",
	}
}

func TestAddFaculty_Success(t *testing.T) {
	store := newFakeFacultyStore()
	svc := NewFacultyService(store, zerolog.Nop())

	err := svc.AddFaculty(context.Background(), validFacultyRequest())
	require.NoError(t, err)
	assert.Contains(t, store.faculty, int64(1001))
}

func TestAddFaculty_DuplicateID(t *testing.T) {
	store := newFakeFacultyStore()
	svc := NewFacultyService(store, zerolog.Nop())

	require.NoError(t, svc.AddFaculty(context.Background(), validFacultyRequest()))

	err := svc.AddFaculty(context.Background(), validFacultyRequest())
	assert.ErrorIs(t, err, apperrors.ErrFacultyIDExists)
}

func TestAddFaculty_Validation(t *testing.T) {
	store := newFakeFacultyStore()
	svc := NewFacultyService(store, zerolog.Nop())

	req := validFacultyRequest()
	req.Gender = "female"

	err := svc.AddFaculty(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.faculty)
}

func TestCreateFacultyLogin_Success(t *testing.T) {
	store := newFakeFacultyStore()
	svc := NewFacultyService(store, zerolog.Nop())

	require.NoError(t, svc.AddFaculty(context.Background(), validFacultyRequest()))

	err := svc.CreateFacultyLogin(context.Background(), 1001, &dto.CreateFacultyLoginRequest{
		Username: "faculty@example.com",
		Password: "faculty123",
	})
	require.NoError(t, err)

	// The stored credential is a hash of the password, never the plaintext
	hash := store.logins[1001]
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "faculty123", hash)
	assert.True(t, auth.CheckPassword(hash, "faculty123"))
}

func TestCreateFacultyLogin_UnknownFaculty(t *testing.T) {
	store := newFakeFacultyStore()
	svc := NewFacultyService(store, zerolog.Nop())

	err := svc.CreateFacultyLogin(context.Background(), 9999, &dto.CreateFacultyLoginRequest{
		Username: "faculty@example.com",
		Password: "faculty123",
	})
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestCreateFacultyLogin_BlankCredentials(t *testing.T) {
	store := newFakeFacultyStore()
	svc := NewFacultyService(store, zerolog.Nop())

	err := svc.CreateFacultyLogin(context.Background(), 1001, &dto.CreateFacultyLoginRequest{
		Username: "  ",
		Password: "faculty123",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
