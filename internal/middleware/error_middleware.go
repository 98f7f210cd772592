package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/logger"
)

// HandleAPIError maps a service error to the wire response. Sentinel errors
// carry a fixed status and message; CustomError wraps a sentinel with a more
// specific message that is surfaced as-is.
func HandleAPIError(c *gin.Context, err error) {
	status, message := classify(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
	}

	c.JSON(status, dto.NewMessageResponse(message))
}

func classify(err error) (int, string) {
	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	message := func(fallback string) string {
		if hasCustom && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials!"
	case errors.Is(err, apperrors.ErrTokenMissing):
		return http.StatusUnauthorized, "Token is missing!"
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, "Token is invalid!"
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return http.StatusUnauthorized, "Account is disabled!"
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, "Access denied!"
	case errors.Is(err, apperrors.ErrStudentIDExists):
		return http.StatusBadRequest, message("Student ID already exists!")
	case errors.Is(err, apperrors.ErrFacultyIDExists):
		return http.StatusBadRequest, message("Faculty ID already exists!")
	case errors.Is(err, apperrors.ErrUsernameExists):
		return http.StatusBadRequest, message("Username already exists!")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusBadRequest, message("Student not found!")
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		return http.StatusBadRequest, message("Faculty not found!")
	case errors.Is(err, apperrors.ErrStudentSuspended):
		return http.StatusBadRequest, message("Student is already suspended!")
	case errors.Is(err, apperrors.ErrRequestNotPending):
		return http.StatusBadRequest, message("Request already processed!")
	case errors.Is(err, apperrors.ErrInvalidAction):
		return http.StatusBadRequest, message("Action must be approve or reject!")
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, message("Validation failed!")
	default:
		return http.StatusInternalServerError, "Internal server error!"
	}
}
