package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/dberrors"
)

// StatusFilter selects which students a listing query returns
type StatusFilter string

const (
	FilterAll       StatusFilter = ""
	FilterActive    StatusFilter = "ACTIVE"
	FilterSuspended StatusFilter = "SUSPENDED"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a student and its initial ACTIVE status row in one
// transaction. Both writes commit together or neither does.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO students (student_id, full_name, mobile_number, section, department, gender, batch_year, father_name, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		student.StudentID,
		student.FullName,
		student.MobileNumber,
		student.Section,
		student.Department,
		student.Gender,
		student.BatchYear,
		student.FatherName,
		student.Address,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_pkey") {
			return apperrors.NewCustomError(apperrors.ErrStudentIDExists,
				fmt.Sprintf("student_id %d already exists!", student.StudentID))
		}
		return fmt.Errorf("error inserting student: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO student_status (student_id, status)
		VALUES ($1, 'ACTIVE')`,
		student.StudentID,
	)
	if err != nil {
		return fmt.Errorf("error inserting student status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List retrieves students joined with their status, ordered by student_id.
// An empty filter returns everyone.
func (r *StudentRepository) List(ctx context.Context, filter StatusFilter) ([]*models.StudentRecord, error) {
	query := `
		SELECT s.student_id, s.full_name, s.mobile_number, s.section, s.department, s.gender, s.batch_year, s.father_name, s.address, s.created_at,
		       st.is_suspended, st.suspension_reason, st.status, st.approved_by_user_id, st.approval_date
		FROM students s
		JOIN student_status st ON st.student_id = s.student_id
	`

	var args []any
	if filter != FilterAll {
		query += ` WHERE st.status = $1`
		args = append(args, string(filter))
	}
	query += ` ORDER BY s.student_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.StudentRecord
	for rows.Next() {
		var rec models.StudentRecord
		if err := rows.Scan(
			&rec.StudentID,
			&rec.FullName,
			&rec.MobileNumber,
			&rec.Section,
			&rec.Department,
			&rec.Gender,
			&rec.BatchYear,
			&rec.FatherName,
			&rec.Address,
			&rec.CreatedAt,
			&rec.IsSuspended,
			&rec.SuspensionReason,
			&rec.Status,
			&rec.ApprovedByUserID,
			&rec.ApprovalDate,
		); err != nil {
			return nil, err
		}
		students = append(students, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Exists checks if a student with the given id is registered
func (r *StudentRepository) Exists(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}
