package services

import (
	"context"
	"fmt"

	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/app/repositories"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/validation"
)

// StudentStore is the registry access the student service needs
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context, filter repositories.StatusFilter) ([]*models.StudentRecord, error)
}

// StudentService defines the interface for student registry operations
type StudentService interface {
	AddStudent(ctx context.Context, req *dto.AddStudentRequest) error
	ListAll(ctx context.Context) ([]*models.StudentRecord, error)
	ListActive(ctx context.Context) ([]*models.StudentRecord, error)
	ListSuspended(ctx context.Context) ([]*models.StudentRecord, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) StudentService {
	return &studentServiceImpl{
		students: students,
	}
}

// validateStudent checks field formats beyond required-ness
func validateStudent(req *dto.AddStudentRequest) error {
	if req.StudentID <= 0 {
		return apperrors.NewValidationError("student_id must be positive!")
	}
	if !validation.IsValidName(req.FullName) {
		return apperrors.NewValidationError("full_name is invalid!")
	}
	if !validation.IsValidMobile(req.MobileNumber) {
		return apperrors.NewValidationError("mobile_number is invalid!")
	}
	if !validation.IsValidGender(req.Gender) {
		return apperrors.NewValidationError("gender must be M, F or O!")
	}
	if !validation.IsValidBatchYear(req.BatchYear) {
		return apperrors.NewValidationError(fmt.Sprintf("batch_year %d is invalid!", req.BatchYear))
	}
	return nil
}

// AddStudent registers a new student. The student row and its initial ACTIVE
// status row are created atomically by the repository.
func (s *studentServiceImpl) AddStudent(ctx context.Context, req *dto.AddStudentRequest) error {
	if err := validateStudent(req); err != nil {
		return err
	}

	student := &models.Student{
		StudentID:    req.StudentID,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Section:      req.Section,
		Department:   req.Department,
		Gender:       req.Gender,
		BatchYear:    req.BatchYear,
		FatherName:   req.FatherName,
		Address:      req.Address,
	}

	return s.students.Create(ctx, student)
}

// ListAll returns every student with status, ordered by student_id
func (s *studentServiceImpl) ListAll(ctx context.Context) ([]*models.StudentRecord, error) {
	return s.students.List(ctx, repositories.FilterAll)
}

// ListActive returns students whose status is ACTIVE
func (s *studentServiceImpl) ListActive(ctx context.Context) ([]*models.StudentRecord, error) {
	return s.students.List(ctx, repositories.FilterActive)
}

// ListSuspended returns students whose status is SUSPENDED
func (s *studentServiceImpl) ListSuspended(ctx context.Context) ([]*models.StudentRecord, error) {
	return s.students.List(ctx, repositories.FilterSuspended)
}
