package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/app/repositories"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students   map[int64]*models.Student
	lastFilter repositories.StatusFilter
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.StudentID]; ok {
		return apperrors.NewCustomError(apperrors.ErrStudentIDExists, "student_id already exists!")
	}
	f.students[student.StudentID] = student
	return nil
}

func (f *fakeStudentStore) List(_ context.Context, filter repositories.StatusFilter) ([]*models.StudentRecord, error) {
	f.lastFilter = filter
	return nil, nil
}

func validAddRequest() *dto.AddStudentRequest {
	return &dto.AddStudentRequest{
		StudentID:    10,
		FullName:     "Alice Williams",
		MobileNumber: "+1111111111",
		Department:   "Computer Science",
		Gender:       "F",
		BatchYear:    2022,
	}
}

func TestAddStudent_Success(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	err := svc.AddStudent(context.Background(), validAddRequest())
	require.NoError(t, err)

	student, ok := store.students[10]
	require.True(t, ok)
	assert.Equal(t, "Alice Williams", student.FullName)
}

func TestAddStudent_DuplicateID(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	require.NoError(t, svc.AddStudent(context.Background(), validAddRequest()))

	err := svc.AddStudent(context.Background(), validAddRequest())
	assert.ErrorIs(t, err, apperrors.ErrStudentIDExists)
}

func TestAddStudent_Validation(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	cases := []struct {
		name   string
		mutate func(*dto.AddStudentRequest)
	}{
		{"non-positive id", func(r *dto.AddStudentRequest) { r.StudentID = 0 }},
		{"short name", func(r *dto.AddStudentRequest) { r.FullName = "A" }},
		{"bad mobile", func(r *dto.AddStudentRequest) { r.MobileNumber = "call-me" }},
		{"bad gender", func(r *dto.AddStudentRequest) { r.Gender = "X" }},
		{"ancient batch year", func(r *dto.AddStudentRequest) { r.BatchYear = 1980 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAddRequest()
			tc.mutate(req)

			err := svc.AddStudent(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Empty(t, store.students)
		})
	}
}

func TestAddStudent_ValidationMessageSurfaced(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	req := validAddRequest()
	req.Gender = "X"

	err := svc.AddStudent(context.Background(), req)
	require.Error(t, err)

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "gender must be M, F or O!", custom.Message)
}

func TestListFilters(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	_, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repositories.FilterAll, store.lastFilter)

	_, err = svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repositories.FilterActive, store.lastFilter)

	_, err = svc.ListSuspended(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repositories.FilterSuspended, store.lastFilter)
}
