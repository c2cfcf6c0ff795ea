// Package stats reduces attendance records into present/absent counts and
// percentages.
package stats

import (
	"strings"

	"attendance_api/models"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Counts holds the reduction of a set of attendance records. Records whose
// status is neither present nor absent count toward Total only.
type Counts struct {
	Total   int
	Present int
	Absent  int
}

// Add folds a single status into the counts.
func (c Counts) Add(status string) Counts {
	c.Total++
	switch {
	case strings.EqualFold(status, StatusPresent):
		c.Present++
	case strings.EqualFold(status, StatusAbsent):
		c.Absent++
	}
	return c
}

// Percentage returns Present/Total*100 rounded to two decimals, or 0 when
// there are no records.
func (c Counts) Percentage() float64 {
	return Percentage(c.Present, c.Total)
}

func Summarize(records []models.AttendanceRecord) Counts {
	var c Counts
	for _, r := range records {
		c = c.Add(r.Status)
	}
	return c
}

// Percentage computes part/total*100 rounded half-up to two decimal places.
// The rounding is done in integer arithmetic on the exact ratio, so 1/32
// (3.125%) yields 3.13.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	hundredths := (int64(part)*20000 + int64(total)) / (2 * int64(total))
	return float64(hundredths) / 100
}

// BuildStudentView merges a student with its already filtered attendance
// records and their statistics.
func BuildStudentView(s models.Student, records []models.AttendanceRecord) models.StudentView {
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	c := Summarize(records)
	return models.StudentView{
		ID:                   s.ID,
		RollNumber:           s.RollNumber,
		FullName:             s.FullName,
		Email:                s.Email,
		Phone:                s.Phone,
		Course:               s.Course,
		Semester:             s.Semester,
		Gender:               s.Gender,
		DateOfBirth:          s.DateOfBirth,
		DepartmentID:         s.DepartmentID,
		ClassID:              s.ClassID,
		OrganizationID:       s.OrganizationID,
		AttendanceRecords:    records,
		TotalPresent:         c.Present,
		TotalAbsent:          c.Absent,
		AttendancePercentage: c.Percentage(),
	}
}

// Overall converts aggregate counts into the stats response.
func Overall(c Counts) models.AttendanceStats {
	return models.AttendanceStats{
		TotalRecords:      c.Total,
		PresentCount:      c.Present,
		AbsentCount:       c.Absent,
		OverallPercentage: c.Percentage(),
	}
}
