package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/dberrors"
)

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

// Create inserts a new faculty record without a login account
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO faculty (faculty_id, full_name, designation, gender, mobile_number, email_address)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		faculty.FacultyID,
		faculty.FullName,
		faculty.Designation,
		faculty.Gender,
		faculty.MobileNumber,
		faculty.EmailAddress,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_pkey") {
			return apperrors.NewCustomError(apperrors.ErrFacultyIDExists,
				fmt.Sprintf("faculty_id %d already exists!", faculty.FacultyID))
		}
		return fmt.Errorf("error inserting faculty: %w", err)
	}

	return nil
}

// CreateLogin provisions a FACULTY login account and links it to the faculty
// row in one transaction. An orphaned user or a dangling faculty link would
// violate the data model, so both writes commit together or neither does.
func (r *FacultyRepository) CreateLogin(ctx context.Context, facultyID int64, username, passwordHash string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, user_type)
		VALUES ($1, $2, 'FACULTY')
		RETURNING user_id`,
		username, passwordHash,
	).Scan(&userID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return 0, apperrors.NewCustomError(apperrors.ErrUsernameExists,
				fmt.Sprintf("username %s is already taken!", username))
		}
		return 0, fmt.Errorf("error creating login account: %w", err)
	}

	cmdTag, err := tx.Exec(ctx,
		`UPDATE faculty SET user_id = $1 WHERE faculty_id = $2`,
		userID, facultyID,
	)
	if err != nil {
		return 0, fmt.Errorf("error linking login to faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return 0, apperrors.NewCustomError(apperrors.ErrFacultyNotFound,
			fmt.Sprintf("faculty %d not found!", facultyID))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return userID, nil
}

// GetByID retrieves a faculty member by id
func (r *FacultyRepository) GetByID(ctx context.Context, facultyID int64) (*models.Faculty, error) {
	query := `
		SELECT faculty_id, full_name, designation, gender, mobile_number, email_address, user_id
		FROM faculty
		WHERE faculty_id = $1
	`

	var faculty models.Faculty
	err := r.db.QueryRow(ctx, query, facultyID).Scan(
		&faculty.FacultyID,
		&faculty.FullName,
		&faculty.Designation,
		&faculty.Gender,
		&faculty.MobileNumber,
		&faculty.EmailAddress,
		&faculty.UserID,
	)
	if err != nil {
		return nil, apperrors.ErrFacultyNotFound
	}

	return &faculty, nil
}

// GetAll retrieves all faculty members ordered by id
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	query := `
		SELECT faculty_id, full_name, designation, gender, mobile_number, email_address, user_id
		FROM faculty
		ORDER BY faculty_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		var faculty models.Faculty
		if err := rows.Scan(
			&faculty.FacultyID,
			&faculty.FullName,
			&faculty.Designation,
			&faculty.Gender,
			&faculty.MobileNumber,
			&faculty.EmailAddress,
			&faculty.UserID,
		); err != nil {
			return nil, err
		}
		faculties = append(faculties, &faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faculties, nil
}
