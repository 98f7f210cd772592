package models

import (
	"time"
)

// User defines the login account model based on the 'users' table
type User struct {
	ID           int64     `json:"user_id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt hash, excluded from JSON
	UserType     RoleType  `json:"user_type" db:"user_type"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// FullName is resolved from the linked hod or faculty row, no db column
	FullName string `json:"full_name,omitempty"`
}

// HOD defines the department-head profile based on the 'hod' table
type HOD struct {
	ID           int64  `json:"hod_id" db:"hod_id"`
	FullName     string `json:"full_name" db:"full_name"`
	Department   string `json:"department" db:"department"`
	MobileNumber string `json:"mobile_number" db:"mobile_number"`
	EmailAddress string `json:"email_address" db:"email_address"`
	UserID       int64  `json:"user_id" db:"user_id"`
}
