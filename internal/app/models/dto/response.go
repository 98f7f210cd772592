package dto

import (
	"github.com/vkapoor/studentinfo/internal/app/models"
)

// MessageResponse is the standard `{message}` body used by write endpoints
// and every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// StudentListResponse wraps a student listing
type StudentListResponse struct {
	Message  string                  `json:"message"`
	Students []*models.StudentRecord `json:"students"`
}

// RequestListResponse wraps a suspension request listing
type RequestListResponse struct {
	Message  string                            `json:"message"`
	Requests []*models.SuspensionRequestDetail `json:"requests"`
}
