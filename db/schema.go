package db

import (
	"context"
	"database/sql"
	"fmt"
)

const Schema = `
-- Create students table
CREATE TABLE IF NOT EXISTS students (
    id UUID PRIMARY KEY,
    roll_number VARCHAR(50) UNIQUE NOT NULL,
    full_name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    phone VARCHAR(50),
    course VARCHAR(255),
    semester VARCHAR(20),
    gender VARCHAR(20),
    date_of_birth DATE,
    department_id VARCHAR(50),
    class_id VARCHAR(50),
    organization_id VARCHAR(50)
);

CREATE INDEX IF NOT EXISTS idx_students_department ON students(department_id);
CREATE INDEX IF NOT EXISTS idx_students_organization ON students(organization_id);

-- Create attendance table
CREATE TABLE IF NOT EXISTS attendance (
    id SERIAL PRIMARY KEY,
    student_id UUID NOT NULL,
    date DATE NOT NULL,
    status VARCHAR(50) NOT NULL,
    FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE,
    UNIQUE(student_id, date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(date);
`

// InitSchema initializes the database schema
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	if err != nil {
		return fmt.Errorf("error initializing database schema: %w", err)
	}
	return nil
}
