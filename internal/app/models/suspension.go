package models

import (
	"time"
)

// SuspensionRequest defines the faculty-initiated suspension request based on
// the 'suspension_requests' table. Rows are never deleted; APPROVED and
// REJECTED are terminal.
type SuspensionRequest struct {
	RequestID         int64         `json:"request_id" db:"request_id"`
	StudentID         int64         `json:"student_id" db:"student_id"`
	RequestedByUserID int64         `json:"requested_by_user_id" db:"requested_by_user_id"`
	SuspensionReason  string        `json:"suspension_reason" db:"suspension_reason"`
	Status            RequestStatus `json:"status" db:"status"`
	RequestDate       time.Time     `json:"request_date" db:"request_date"`
	ApprovedByUserID  *int64        `json:"approved_by_user_id,omitempty" db:"approved_by_user_id"`
	ApprovalDate      *time.Time    `json:"approval_date,omitempty" db:"approval_date"`
}

// SuspensionRequestDetail is a suspension request joined with the student it
// targets and the name of the requesting faculty member.
type SuspensionRequestDetail struct {
	SuspensionRequest
	StudentName string  `json:"student_name"`
	Department  string  `json:"department"`
	Section     *string `json:"section,omitempty"`
	RequestedBy string  `json:"requested_by,omitempty"`
}
