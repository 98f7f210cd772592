package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
	"github.com/vkapoor/studentinfo/internal/pkg/logger"
)

type seedUser struct {
	username string
	password string
	userType string
}

type seedStudent struct {
	studentID    int64
	fullName     string
	mobileNumber string
	section      string
	department   string
	gender       string
	batchYear    int
	fatherName   string
	address      string
}

// SeedDatabase inserts the default accounts and sample students. Every insert
// is existence-guarded so repeated startups are no-ops.
func SeedDatabase(ctx context.Context, db *pgxpool.Pool) error {
	if err := seedAccounts(ctx, db); err != nil {
		return err
	}
	if err := seedStudents(ctx, db); err != nil {
		return err
	}
	return nil
}

func seedAccounts(ctx context.Context, db *pgxpool.Pool) error {
	hodUserID, created, err := ensureUser(ctx, db, seedUser{"hod@example.com", "hod123", "HOD"})
	if err != nil {
		return err
	}
	if created {
		_, err = db.Exec(ctx, `
			INSERT INTO hod (full_name, department, mobile_number, email_address, user_id)
			VALUES ($1, $2, $3, $4, $5)`,
			"Dr. John Smith", "Computer Science", "+1234567890", "hod@example.com", hodUserID)
		if err != nil {
			return fmt.Errorf("failed to seed HOD profile: %w", err)
		}
		logger.Info().Str("username", "hod@example.com").Msg("Seeded HOD account")
	}

	facultyUserID, created, err := ensureUser(ctx, db, seedUser{"faculty@example.com", "faculty123", "FACULTY"})
	if err != nil {
		return err
	}
	if created {
		_, err = db.Exec(ctx, `
			INSERT INTO faculty (faculty_id, full_name, designation, gender, mobile_number, email_address, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			int64(1001), "Prof. Sarah Johnson", "Assistant Professor", "F", "+1234567891", "faculty@example.com", facultyUserID)
		if err != nil {
			return fmt.Errorf("failed to seed faculty profile: %w", err)
		}
		logger.Info().Str("username", "faculty@example.com").Msg("Seeded faculty account")
	}

	return nil
}

// ensureUser inserts a login account unless the username already exists.
// Returns the user id and whether a row was created.
func ensureUser(ctx context.Context, db *pgxpool.Pool, u seedUser) (int64, bool, error) {
	var userID int64
	err := db.QueryRow(ctx, `SELECT user_id FROM users WHERE username = $1`, u.username).Scan(&userID)
	if err == nil {
		return userID, false, nil
	}

	passwordHash, err := auth.HashPassword(u.password)
	if err != nil {
		return 0, false, fmt.Errorf("failed to hash seed password: %w", err)
	}

	err = db.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, user_type, is_active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING user_id`,
		u.username, passwordHash, u.userType).Scan(&userID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to seed user %s: %w", u.username, err)
	}

	return userID, true, nil
}

func seedStudents(ctx context.Context, db *pgxpool.Pool) error {
	students := []seedStudent{
		{1, "Alice Williams", "+1111111111", "A", "Computer Science", "F", 2022, "Robert Williams", "12 Oak Street"},
		{2, "Bob Martinez", "+2222222222", "A", "Computer Science", "M", 2022, "Carlos Martinez", "34 Pine Avenue"},
		{3, "Charlie Brown", "+3333333333", "B", "Electronics", "M", 2023, "David Brown", "56 Maple Road"},
	}

	for _, s := range students {
		var exists bool
		err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`, s.studentID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check seed student existence: %w", err)
		}
		if exists {
			continue
		}

		tx, err := db.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to start seed transaction: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO students (student_id, full_name, mobile_number, section, department, gender, batch_year, father_name, address)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			s.studentID, s.fullName, s.mobileNumber, s.section, s.department, s.gender, s.batchYear, s.fatherName, s.address)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to seed student %d: %w", s.studentID, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO student_status (student_id, is_suspended, status)
			VALUES ($1, FALSE, 'ACTIVE')`,
			s.studentID)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to seed student status %d: %w", s.studentID, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit seed transaction: %w", err)
		}

		logger.Info().Int64("studentID", s.studentID).Msg("Seeded student")
	}

	return nil
}
