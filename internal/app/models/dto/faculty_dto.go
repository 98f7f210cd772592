package dto

// AddFacultyRequest carries the fields for faculty registration
type AddFacultyRequest struct {
	FacultyID    int64   `json:"faculty_id" binding:"required"`
	FullName     string  `json:"full_name" binding:"required"`
	Designation  string  `json:"designation" binding:"required"`
	Gender       string  `json:"gender" binding:"required"`
	MobileNumber *string `json:"mobile_number"`
	EmailAddress *string `json:"email_address"`
}

// CreateFacultyLoginRequest carries credentials for faculty login provisioning
type CreateFacultyLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
