package db

import (
	"cmp"
	"context"
	"slices"

	"attendance_api/filters"
	"attendance_api/models"
	"attendance_api/stats"
)

// MemoryStore serves a fixed dataset from memory using the filter
// predicates. It is read-only after construction and safe for concurrent use.
type MemoryStore struct {
	students []models.Student
	records  []models.AttendanceRecord
	byID     map[string]models.Student
}

func NewMemoryStore(students []models.Student, records []models.AttendanceRecord) *MemoryStore {
	s := &MemoryStore{
		students: slices.Clone(students),
		records:  slices.Clone(records),
		byID:     make(map[string]models.Student, len(students)),
	}
	slices.SortFunc(s.students, func(a, b models.Student) int {
		return cmp.Or(cmp.Compare(a.RollNumber, b.RollNumber), cmp.Compare(a.ID, b.ID))
	})
	slices.SortStableFunc(s.records, func(a, b models.AttendanceRecord) int {
		return cmp.Or(a.Date.Compare(b.Date.Time), cmp.Compare(a.ID, b.ID))
	})
	for _, st := range s.students {
		s.byID[st.ID] = st
	}
	return s
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) ListStudents(ctx context.Context, f filters.StudentFilter, page filters.Page) ([]models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matched := filters.Apply(s.students, f.Predicate())
	start, end := page.Bounds(len(matched))
	return matched[start:end], nil
}

func (s *MemoryStore) ListAttendance(ctx context.Context, studentIDs []string, f filters.AttendanceFilter) (map[string][]models.AttendanceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	byStudent := make(map[string][]models.AttendanceRecord, len(studentIDs))
	wanted := make(map[string]bool, len(studentIDs))
	for _, id := range studentIDs {
		wanted[id] = true
	}
	pred := f.Predicate()
	for _, r := range s.records {
		if wanted[r.StudentID] && pred(r) {
			byStudent[r.StudentID] = append(byStudent[r.StudentID], r)
		}
	}
	return byStudent, nil
}

func (s *MemoryStore) AttendanceCounts(ctx context.Context, f filters.StatsFilter) (stats.Counts, error) {
	if err := ctx.Err(); err != nil {
		return stats.Counts{}, err
	}
	pred := f.Predicate()
	var c stats.Counts
	for _, r := range s.records {
		student, ok := s.byID[r.StudentID]
		if !ok {
			continue
		}
		if pred(filters.StatsRow{Record: r, Student: student}) {
			c = c.Add(r.Status)
		}
	}
	return c, nil
}
