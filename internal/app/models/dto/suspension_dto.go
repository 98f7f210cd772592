package dto

// SuspendRequest carries the reason for a suspension or a suspension request
type SuspendRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ResolveRequest carries the HOD's decision on a pending suspension request
type ResolveRequest struct {
	Action string `json:"action" binding:"required"`
}
