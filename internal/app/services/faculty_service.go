package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
	"github.com/vkapoor/studentinfo/internal/pkg/validation"
)

// FacultyStore is the registry access the faculty service needs
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	CreateLogin(ctx context.Context, facultyID int64, username, passwordHash string) (int64, error)
}

// FacultyService defines the interface for faculty registry operations
type FacultyService interface {
	AddFaculty(ctx context.Context, req *dto.AddFacultyRequest) error
	CreateFacultyLogin(ctx context.Context, facultyID int64, req *dto.CreateFacultyLoginRequest) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	faculty FacultyStore
	logger  zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(faculty FacultyStore, logger zerolog.Logger) FacultyService {
	return &facultyServiceImpl{
		faculty: faculty,
		logger:  logger,
	}
}

// AddFaculty registers a new faculty member without a login account
func (s *facultyServiceImpl) AddFaculty(ctx context.Context, req *dto.AddFacultyRequest) error {
	if req.FacultyID <= 0 {
		return apperrors.NewValidationError("faculty_id must be positive!")
	}
	if !validation.IsValidName(req.FullName) {
		return apperrors.NewValidationError("full_name is invalid!")
	}
	if !validation.IsValidGender(req.Gender) {
		return apperrors.NewValidationError("gender must be M, F or O!")
	}

	faculty := &models.Faculty{
		FacultyID:    req.FacultyID,
		FullName:     req.FullName,
		Designation:  req.Designation,
		Gender:       req.Gender,
		MobileNumber: req.MobileNumber,
		EmailAddress: req.EmailAddress,
	}

	return s.faculty.Create(ctx, faculty)
}

// CreateFacultyLogin provisions a FACULTY login account and links it to the
// faculty record. The user row and the link are written transactionally.
func (s *facultyServiceImpl) CreateFacultyLogin(ctx context.Context, facultyID int64, req *dto.CreateFacultyLoginRequest) error {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return apperrors.NewValidationError("Username and password required!")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	userID, err := s.faculty.CreateLogin(ctx, facultyID, req.Username, passwordHash)
	if err != nil {
		return err
	}

	s.logger.Info().Int64("facultyID", facultyID).Int64("userID", userID).Msg("Faculty login created")
	return nil
}
