package models

type Student struct {
	ID             string
	RollNumber     string
	FullName       string
	Email          string
	Phone          *string
	Course         *string
	Semester       *string
	Gender         *string
	DateOfBirth    *Date
	DepartmentID   *string
	ClassID        *string
	OrganizationID *string
}

type AttendanceRecord struct {
	ID        int    `json:"id"`
	StudentID string `json:"-"`
	Date      Date   `json:"date"`
	Status    string `json:"status"`
}

// StudentView is a student together with its filtered attendance and the
// statistics derived from it.
type StudentView struct {
	ID                   string             `json:"id"`
	RollNumber           string             `json:"roll_number"`
	FullName             string             `json:"full_name"`
	Email                string             `json:"email"`
	Phone                *string            `json:"phone"`
	Course               *string            `json:"course"`
	Semester             *string            `json:"semester"`
	Gender               *string            `json:"gender"`
	DateOfBirth          *Date              `json:"date_of_birth"`
	DepartmentID         *string            `json:"department_id"`
	ClassID              *string            `json:"class_id"`
	OrganizationID       *string            `json:"organization_id"`
	AttendanceRecords    []AttendanceRecord `json:"attendance_records"`
	TotalPresent         int                `json:"total_present"`
	TotalAbsent          int                `json:"total_absent"`
	AttendancePercentage float64            `json:"attendance_percentage"`
}

type AttendanceStats struct {
	TotalRecords      int     `json:"total_records"`
	PresentCount      int     `json:"present_count"`
	AbsentCount       int     `json:"absent_count"`
	OverallPercentage float64 `json:"overall_percentage"`
}
