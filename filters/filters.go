// Package filters turns optional listing criteria into predicates. Each
// filter renders both as in-memory predicate functions and as SQL
// conditions, built from the same value.
package filters

import (
	"strings"

	"attendance_api/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Predicate decides whether a value belongs to a filtered result.
type Predicate[T any] func(T) bool

// All combines predicates with logical AND. An empty set matches everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates with logical OR. An empty set matches nothing.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Apply returns the elements of items matching pred, in their original order.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// StudentFilter narrows the student collection. Empty fields are unset.
type StudentFilter struct {
	Search         string
	DepartmentID   string
	ClassID        string
	Course         string
	Semester       string
	OrganizationID string
}

// AttendanceFilter narrows one student's attendance records.
type AttendanceFilter struct {
	DateFrom *models.Date
	DateTo   *models.Date
	Status   string
}

// StatsFilter narrows attendance records joined with their students.
type StatsFilter struct {
	DateFrom       *models.Date
	DateTo         *models.Date
	DepartmentID   string
	OrganizationID string
}

// Page is an offset/limit window over the student collection.
type Page struct {
	Limit  int
	Offset int
}

// Bounds returns the slice bounds of the window over n ordered items.
func (p Page) Bounds(n int) (start, end int) {
	start = min(p.Offset, n)
	end = min(start+p.Limit, n)
	return start, end
}

// StatsRow is an attendance record joined with the student it belongs to.
type StatsRow struct {
	Record  models.AttendanceRecord
	Student models.Student
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func optionalEquals(v *string, want string) bool {
	return v != nil && *v == want
}

// Predicate returns the conjunction of every set criterion.
func (f StudentFilter) Predicate() Predicate[models.Student] {
	var preds []Predicate[models.Student]
	if f.Search != "" {
		term := f.Search
		preds = append(preds, Any(
			func(s models.Student) bool { return containsFold(s.FullName, term) },
			func(s models.Student) bool { return containsFold(s.RollNumber, term) },
			func(s models.Student) bool { return containsFold(s.Email, term) },
		))
	}
	if f.DepartmentID != "" {
		preds = append(preds, func(s models.Student) bool { return optionalEquals(s.DepartmentID, f.DepartmentID) })
	}
	if f.ClassID != "" {
		preds = append(preds, func(s models.Student) bool { return optionalEquals(s.ClassID, f.ClassID) })
	}
	if f.Course != "" {
		preds = append(preds, func(s models.Student) bool { return s.Course != nil && containsFold(*s.Course, f.Course) })
	}
	if f.Semester != "" {
		preds = append(preds, func(s models.Student) bool { return optionalEquals(s.Semester, f.Semester) })
	}
	if f.OrganizationID != "" {
		preds = append(preds, func(s models.Student) bool { return optionalEquals(s.OrganizationID, f.OrganizationID) })
	}
	return All(preds...)
}

func dateRange(from, to *models.Date) Predicate[models.Date] {
	return func(d models.Date) bool {
		if from != nil && d.Before(from.Time) {
			return false
		}
		if to != nil && d.After(to.Time) {
			return false
		}
		return true
	}
}

func (f AttendanceFilter) Predicate() Predicate[models.AttendanceRecord] {
	inRange := dateRange(f.DateFrom, f.DateTo)
	preds := []Predicate[models.AttendanceRecord]{
		func(r models.AttendanceRecord) bool { return inRange(r.Date) },
	}
	if f.Status != "" {
		preds = append(preds, func(r models.AttendanceRecord) bool { return strings.EqualFold(r.Status, f.Status) })
	}
	return All(preds...)
}

func (f StatsFilter) Predicate() Predicate[StatsRow] {
	inRange := dateRange(f.DateFrom, f.DateTo)
	preds := []Predicate[StatsRow]{
		func(r StatsRow) bool { return inRange(r.Record.Date) },
	}
	if f.DepartmentID != "" {
		preds = append(preds, func(r StatsRow) bool { return optionalEquals(r.Student.DepartmentID, f.DepartmentID) })
	}
	if f.OrganizationID != "" {
		preds = append(preds, func(r StatsRow) bool { return optionalEquals(r.Student.OrganizationID, f.OrganizationID) })
	}
	return All(preds...)
}
