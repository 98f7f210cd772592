package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/dberrors"
)

// execer is satisfied by both *pgxpool.Pool and pgx.Tx, so the status upsert
// can run standalone or inside a resolve transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// SuspensionRepository handles database operations for the suspension workflow
type SuspensionRepository struct {
	db *pgxpool.Pool
}

// NewSuspensionRepository creates a new suspension repository
func NewSuspensionRepository(db *pgxpool.Pool) *SuspensionRepository {
	return &SuspensionRepository{
		db: db,
	}
}

// upsertStatus marks a student SUSPENDED, overwriting reason and approver.
// The student_status uniqueness constraint makes this a true upsert; re-suspending
// an already-suspended student just re-stamps the row.
func upsertStatus(ctx context.Context, q execer, studentID int64, reason string, approverID int64) error {
	_, err := q.Exec(ctx, `
		INSERT INTO student_status (student_id, is_suspended, suspension_reason, status, approved_by_user_id, approval_date)
		VALUES ($1, TRUE, $2, 'SUSPENDED', $3, CURRENT_TIMESTAMP)
		ON CONFLICT (student_id) DO UPDATE
		SET is_suspended        = TRUE,
		    suspension_reason   = EXCLUDED.suspension_reason,
		    status              = 'SUSPENDED',
		    approved_by_user_id = EXCLUDED.approved_by_user_id,
		    approval_date       = EXCLUDED.approval_date`,
		studentID, reason, approverID,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student %d not found!", studentID))
		}
		return fmt.Errorf("error updating student status: %w", err)
	}

	return nil
}

// SuspendStudent suspends a student directly, recording reason and approver.
// Unconditional ACTIVE -> SUSPENDED; last writer wins on concurrent suspends.
func (r *SuspensionRepository) SuspendStudent(ctx context.Context, studentID int64, reason string, approverID int64) error {
	return upsertStatus(ctx, r.db, studentID, reason, approverID)
}

// CreateRequest inserts a PENDING suspension request. Multiple pending
// requests for the same student are permitted.
func (r *SuspensionRepository) CreateRequest(ctx context.Context, req *models.SuspensionRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO suspension_requests (student_id, requested_by_user_id, suspension_reason)
		VALUES ($1, $2, $3)
		RETURNING request_id, status, request_date`,
		req.StudentID, req.RequestedByUserID, req.SuspensionReason,
	).Scan(&req.RequestID, &req.Status, &req.RequestDate)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("student %d not found!", req.StudentID))
		}
		return fmt.Errorf("error creating suspension request: %w", err)
	}

	return nil
}

// ListPending retrieves all PENDING requests joined with student and requester
// details, oldest first (FIFO review order).
func (r *SuspensionRepository) ListPending(ctx context.Context) ([]*models.SuspensionRequestDetail, error) {
	query := `
		SELECT sr.request_id, sr.student_id, sr.requested_by_user_id, sr.suspension_reason, sr.status, sr.request_date, sr.approved_by_user_id, sr.approval_date,
		       s.full_name, s.department, s.section,
		       COALESCE(f.full_name, u.username) AS requested_by
		FROM suspension_requests sr
		JOIN students s ON s.student_id = sr.student_id
		JOIN users u ON u.user_id = sr.requested_by_user_id
		LEFT JOIN faculty f ON f.user_id = u.user_id
		WHERE sr.status = 'PENDING'
		ORDER BY sr.request_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pending requests: %w", err)
	}
	defer rows.Close()

	return scanRequestDetails(rows, true)
}

// ListByRequester retrieves a faculty member's own requests joined with the
// targeted students, newest first.
func (r *SuspensionRepository) ListByRequester(ctx context.Context, userID int64) ([]*models.SuspensionRequestDetail, error) {
	query := `
		SELECT sr.request_id, sr.student_id, sr.requested_by_user_id, sr.suspension_reason, sr.status, sr.request_date, sr.approved_by_user_id, sr.approval_date,
		       s.full_name, s.department, s.section
		FROM suspension_requests sr
		JOIN students s ON s.student_id = sr.student_id
		WHERE sr.requested_by_user_id = $1
		ORDER BY sr.request_date DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}
	defer rows.Close()

	return scanRequestDetails(rows, false)
}

// scanRequestDetails scans joined request rows; withRequester controls the
// trailing requested_by column.
func scanRequestDetails(rows pgx.Rows, withRequester bool) ([]*models.SuspensionRequestDetail, error) {
	var requests []*models.SuspensionRequestDetail
	for rows.Next() {
		var d models.SuspensionRequestDetail
		dest := []any{
			&d.RequestID,
			&d.StudentID,
			&d.RequestedByUserID,
			&d.SuspensionReason,
			&d.Status,
			&d.RequestDate,
			&d.ApprovedByUserID,
			&d.ApprovalDate,
			&d.StudentName,
			&d.Department,
			&d.Section,
		}
		if withRequester {
			dest = append(dest, &d.RequestedBy)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		requests = append(requests, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Resolve flips a PENDING request to APPROVED or REJECTED, stamping approver
// and approval date. Approval also performs the student-status upsert with the
// request's stored reason, inside the same transaction. The status = 'PENDING'
// predicate makes re-resolving an already-resolved request fail instead of
// re-stamping it.
func (r *SuspensionRepository) Resolve(ctx context.Context, requestID int64, status models.RequestStatus, approverID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var studentID int64
	var reason string
	err = tx.QueryRow(ctx, `
		UPDATE suspension_requests
		SET status = $1, approved_by_user_id = $2, approval_date = CURRENT_TIMESTAMP
		WHERE request_id = $3 AND status = 'PENDING'
		RETURNING student_id, suspension_reason`,
		string(status), approverID, requestID,
	).Scan(&studentID, &reason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRequestNotPending
		}
		return fmt.Errorf("error resolving request: %w", err)
	}

	if status == models.RequestApproved {
		if err := upsertStatus(ctx, tx, studentID, reason, approverID); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
