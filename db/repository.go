package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"attendance_api/filters"
	"attendance_api/models"
	"attendance_api/stats"
)

// ErrUnavailable marks errors caused by the database being unreachable.
var ErrUnavailable = errors.New("database unavailable")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var studentColumns = []string{
	"s.id", "s.roll_number", "s.full_name", "s.email", "s.phone", "s.course",
	"s.semester", "s.gender", "s.date_of_birth", "s.department_id", "s.class_id",
	"s.organization_id",
}

// Repository reads students and attendance from Postgres.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func wrapErr(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func where(b sq.SelectBuilder, conds sq.And) sq.SelectBuilder {
	if len(conds) == 0 {
		return b
	}
	return b.Where(conds)
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w: %w", ErrUnavailable, err)
	}
	return nil
}

// StudentsQuery renders the paginated student listing.
func StudentsQuery(f filters.StudentFilter, page filters.Page) (string, []interface{}, error) {
	b := psql.Select(studentColumns...).
		From("students s").
		OrderBy("s.roll_number", "s.id").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	return where(b, f.Conditions()).ToSql()
}

// AttendanceQuery renders the attendance lookup for a batch of students.
func AttendanceQuery(studentIDs []string, f filters.AttendanceFilter) (string, []interface{}, error) {
	b := psql.Select("a.id", "a.student_id", "a.date", "a.status").
		From("attendance a").
		Where(sq.Expr("a.student_id = ANY(?::uuid[])", pq.Array(studentIDs))).
		OrderBy("a.date", "a.id")
	return where(b, f.Conditions()).ToSql()
}

// StatsQuery renders the aggregate attendance counts.
func StatsQuery(f filters.StatsFilter) (string, []interface{}, error) {
	b := psql.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE LOWER(a.status) = 'present')",
		"COUNT(*) FILTER (WHERE LOWER(a.status) = 'absent')",
	).
		From("attendance a").
		Join("students s ON s.id = a.student_id")
	return where(b, f.Conditions()).ToSql()
}

func (r *Repository) ListStudents(ctx context.Context, f filters.StudentFilter, page filters.Page) ([]models.Student, error) {
	query, args, err := StudentsQuery(f, page)
	if err != nil {
		return nil, fmt.Errorf("build students query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("query students", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var (
			s  models.Student
			id uuid.UUID
		)
		err := rows.Scan(
			&id,
			&s.RollNumber,
			&s.FullName,
			&s.Email,
			&s.Phone,
			&s.Course,
			&s.Semester,
			&s.Gender,
			&s.DateOfBirth,
			&s.DepartmentID,
			&s.ClassID,
			&s.OrganizationID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		s.ID = id.String()
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate students", err)
	}
	return students, nil
}

func (r *Repository) ListAttendance(ctx context.Context, studentIDs []string, f filters.AttendanceFilter) (map[string][]models.AttendanceRecord, error) {
	byStudent := make(map[string][]models.AttendanceRecord, len(studentIDs))
	if len(studentIDs) == 0 {
		return byStudent, nil
	}

	query, args, err := AttendanceQuery(studentIDs, f)
	if err != nil {
		return nil, fmt.Errorf("build attendance query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("query attendance", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec       models.AttendanceRecord
			studentID uuid.UUID
		)
		if err := rows.Scan(&rec.ID, &studentID, &rec.Date, &rec.Status); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		rec.StudentID = studentID.String()
		byStudent[rec.StudentID] = append(byStudent[rec.StudentID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate attendance", err)
	}
	return byStudent, nil
}

func (r *Repository) AttendanceCounts(ctx context.Context, f filters.StatsFilter) (stats.Counts, error) {
	query, args, err := StatsQuery(f)
	if err != nil {
		return stats.Counts{}, fmt.Errorf("build stats query: %w", err)
	}

	var c stats.Counts
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.Total, &c.Present, &c.Absent)
	if err != nil {
		return stats.Counts{}, wrapErr("query attendance stats", err)
	}
	return c, nil
}
