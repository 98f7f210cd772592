package models

// Faculty defines the faculty model based on the 'faculty' table.
// UserID is nil until the HOD provisions a login for the faculty member.
type Faculty struct {
	FacultyID    int64   `json:"faculty_id" db:"faculty_id"`
	FullName     string  `json:"full_name" db:"full_name"`
	Designation  string  `json:"designation" db:"designation"`
	Gender       string  `json:"gender" db:"gender"`
	MobileNumber *string `json:"mobile_number,omitempty" db:"mobile_number"`
	EmailAddress *string `json:"email_address,omitempty" db:"email_address"`
	UserID       *int64  `json:"user_id,omitempty" db:"user_id"`
}
