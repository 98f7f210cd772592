package dto

// AddStudentRequest carries the fields for student registration.
// student_id is caller-assigned.
type AddStudentRequest struct {
	StudentID    int64   `json:"student_id" binding:"required"`
	FullName     string  `json:"full_name" binding:"required"`
	MobileNumber string  `json:"mobile_number" binding:"required"`
	Section      *string `json:"section"`
	Department   string  `json:"department" binding:"required"`
	Gender       string  `json:"gender" binding:"required"`
	BatchYear    int     `json:"batch_year" binding:"required"`
	FatherName   *string `json:"father_name"`
	Address      *string `json:"address"`
}
