package models

// RoleType defines the user role type
type RoleType string

const (
	RoleHOD     RoleType = "HOD"
	RoleFaculty RoleType = "FACULTY"
)

// StudentState defines the derived status of a student
type StudentState string

const (
	StudentActive    StudentState = "ACTIVE"
	StudentSuspended StudentState = "SUSPENDED"
)

// RequestStatus defines the lifecycle state of a suspension request.
// PENDING is the only non-terminal state.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)
