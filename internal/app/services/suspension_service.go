package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
)

// SuspensionStore is the workflow state access the suspension service needs
type SuspensionStore interface {
	SuspendStudent(ctx context.Context, studentID int64, reason string, approverID int64) error
	CreateRequest(ctx context.Context, req *models.SuspensionRequest) error
	ListPending(ctx context.Context) ([]*models.SuspensionRequestDetail, error)
	ListByRequester(ctx context.Context, userID int64) ([]*models.SuspensionRequestDetail, error)
	Resolve(ctx context.Context, requestID int64, status models.RequestStatus, approverID int64) error
}

// SuspensionService defines the interface for the suspension workflow
type SuspensionService interface {
	DirectSuspend(ctx context.Context, studentID int64, reason string, actingUserID int64) error
	RequestSuspension(ctx context.Context, studentID int64, reason string, actingUserID int64) (*models.SuspensionRequest, error)
	ListPending(ctx context.Context) ([]*models.SuspensionRequestDetail, error)
	ResolveRequest(ctx context.Context, requestID int64, action string, actingUserID int64) (models.RequestStatus, error)
	ListOwnRequests(ctx context.Context, actingUserID int64) ([]*models.SuspensionRequestDetail, error)
}

// suspensionServiceImpl implements the SuspensionService interface
type suspensionServiceImpl struct {
	store  SuspensionStore
	logger zerolog.Logger
}

// NewSuspensionService creates a new suspension service instance
func NewSuspensionService(store SuspensionStore, logger zerolog.Logger) SuspensionService {
	return &suspensionServiceImpl{
		store:  store,
		logger: logger,
	}
}

// DirectSuspend suspends a student immediately on HOD authority. The
// transition is unconditional; re-suspending overwrites reason and approver.
func (s *suspensionServiceImpl) DirectSuspend(ctx context.Context, studentID int64, reason string, actingUserID int64) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.NewValidationError("Suspension reason required!")
	}

	if err := s.store.SuspendStudent(ctx, studentID, reason, actingUserID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("approvedBy", actingUserID).Msg("Student suspended")
	return nil
}

// RequestSuspension records a faculty-initiated PENDING request. The student's
// status is untouched until an HOD approves.
func (s *suspensionServiceImpl) RequestSuspension(ctx context.Context, studentID int64, reason string, actingUserID int64) (*models.SuspensionRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.NewValidationError("Suspension reason required!")
	}

	req := &models.SuspensionRequest{
		StudentID:         studentID,
		RequestedByUserID: actingUserID,
		SuspensionReason:  reason,
	}

	if err := s.store.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("requestedBy", actingUserID).Int64("requestID", req.RequestID).Msg("Suspension requested")
	return req, nil
}

// ListPending returns all PENDING requests in FIFO review order
func (s *suspensionServiceImpl) ListPending(ctx context.Context) ([]*models.SuspensionRequestDetail, error) {
	return s.store.ListPending(ctx)
}

// ResolveRequest approves or rejects a pending request. Approval additionally
// suspends the student with the request's stored reason; rejection leaves the
// student untouched. A request that is no longer PENDING cannot be resolved
// again.
func (s *suspensionServiceImpl) ResolveRequest(ctx context.Context, requestID int64, action string, actingUserID int64) (models.RequestStatus, error) {
	var status models.RequestStatus
	switch action {
	case "approve":
		status = models.RequestApproved
	case "reject":
		status = models.RequestRejected
	default:
		return "", apperrors.ErrInvalidAction
	}

	if err := s.store.Resolve(ctx, requestID, status, actingUserID); err != nil {
		return "", err
	}

	s.logger.Info().Int64("requestID", requestID).Str("status", string(status)).Int64("resolvedBy", actingUserID).Msg("Suspension request resolved")
	return status, nil
}

// ListOwnRequests returns the acting user's requests, newest first
func (s *suspensionServiceImpl) ListOwnRequests(ctx context.Context, actingUserID int64) ([]*models.SuspensionRequestDetail, error) {
	return s.store.ListByRequester(ctx, actingUserID)
}
