package handlers

import (
	"context"

	"attendance_api/filters"
	"attendance_api/models"
	"attendance_api/stats"
)

// AttendanceStore is the read side of the student/attendance dataset.
type AttendanceStore interface {
	ListStudents(ctx context.Context, f filters.StudentFilter, page filters.Page) ([]models.Student, error)
	ListAttendance(ctx context.Context, studentIDs []string, f filters.AttendanceFilter) (map[string][]models.AttendanceRecord, error)
	AttendanceCounts(ctx context.Context, f filters.StatsFilter) (stats.Counts, error)
	Ping(ctx context.Context) error
}
