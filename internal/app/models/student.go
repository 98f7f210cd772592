package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// StudentID is caller-assigned, not generated.
type Student struct {
	StudentID    int64     `json:"student_id" db:"student_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	MobileNumber string    `json:"mobile_number" db:"mobile_number"`
	Section      *string   `json:"section,omitempty" db:"section"`
	Department   string    `json:"department" db:"department"`
	Gender       string    `json:"gender" db:"gender"`
	BatchYear    int       `json:"batch_year" db:"batch_year"`
	FatherName   *string   `json:"father_name,omitempty" db:"father_name"`
	Address      *string   `json:"address,omitempty" db:"address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// StudentStatus defines the 1:1 status row based on the 'student_status' table.
// Invariant: Status == SUSPENDED exactly when IsSuspended is true.
type StudentStatus struct {
	StudentID        int64        `json:"student_id" db:"student_id"`
	IsSuspended      bool         `json:"is_suspended" db:"is_suspended"`
	SuspensionReason *string      `json:"suspension_reason,omitempty" db:"suspension_reason"`
	Status           StudentState `json:"status" db:"status"`
	ApprovedByUserID *int64       `json:"approved_by_user_id,omitempty" db:"approved_by_user_id"`
	ApprovalDate     *time.Time   `json:"approval_date,omitempty" db:"approval_date"`
}

// StudentRecord is one row of students joined with student_status,
// the shape served by the public listing endpoints.
type StudentRecord struct {
	Student
	IsSuspended      bool         `json:"is_suspended"`
	SuspensionReason *string      `json:"suspension_reason,omitempty"`
	Status           StudentState `json:"status"`
	ApprovedByUserID *int64       `json:"approved_by_user_id,omitempty"`
	ApprovalDate     *time.Time   `json:"approval_date,omitempty"`
}
