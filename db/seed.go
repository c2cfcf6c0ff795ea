package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedData populates the database with the demo dataset. Rows that already
// exist are left untouched.
func SeedData(ctx context.Context, db *sql.DB) error {
	// Start a transaction
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range DemoStudents() {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO students (id, roll_number, full_name, email, phone, course, semester,
                gender, date_of_birth, department_id, class_id, organization_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            ON CONFLICT DO NOTHING
        `, s.ID, s.RollNumber, s.FullName, s.Email, s.Phone, s.Course, s.Semester,
			s.Gender, s.DateOfBirth, s.DepartmentID, s.ClassID, s.OrganizationID)
		if err != nil {
			return fmt.Errorf("error seeding student %s: %w", s.RollNumber, err)
		}
	}

	for _, r := range DemoAttendance() {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO attendance (student_id, date, status)
            VALUES ($1, $2, $3)
            ON CONFLICT (student_id, date) DO NOTHING
        `, r.StudentID, r.Date, r.Status)
		if err != nil {
			return fmt.Errorf("error seeding attendance: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
