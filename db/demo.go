package db

import (
	"time"

	"github.com/google/uuid"

	"attendance_api/models"
)

// studentNamespace derives stable student ids from roll numbers so demo
// attendance rows can reference them before insertion.
var studentNamespace = uuid.MustParse("5b8f4a52-3f0e-4c8e-9a52-1f6de1c2b7a4")

func StudentID(rollNumber string) string {
	return uuid.NewSHA1(studentNamespace, []byte(rollNumber)).String()
}

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *models.Date {
	date := models.NewDate(y, m, d)
	return &date
}

type demoStudent struct {
	roll, name, email, phone, course, semester, gender string
	dob                                                *models.Date
	dept, class, org                                   string
	statuses                                           []string
}

var demoRoster = []demoStudent{
	{"CS001", "John Doe", "john.doe@example.com", "+1234567890", "Computer Science", "6", "Male",
		datePtr(2000, time.May, 15), "dept1", "class1", "org1",
		[]string{"Present", "Absent", "Present"}},
	{"CS002", "Jane Doe", "jane.doe@example.com", "+1234567891", "Computer Science", "6", "Female",
		datePtr(2001, time.February, 3), "dept1", "class1", "org1",
		[]string{"Present", "Present", "Late"}},
	{"EC001", "Arjun Mehta", "arjun.mehta@example.com", "", "Electronics and Communication", "4", "Male",
		datePtr(2002, time.August, 21), "dept2", "class2", "org1",
		[]string{"Absent", "Absent", "Present"}},
	{"ME001", "Maria Garcia", "maria.garcia@example.com", "+1234567893", "Mechanical Engineering", "2", "Female",
		nil, "dept3", "class3", "org2",
		[]string{"Present", "Present", "Present"}},
	{"CV001", "Li Wei", "li.wei@example.com", "", "", "", "",
		nil, "", "", "org2",
		nil},
}

// DemoStudents returns the demo dataset's students.
func DemoStudents() []models.Student {
	students := make([]models.Student, 0, len(demoRoster))
	for _, d := range demoRoster {
		s := models.Student{
			ID:          StudentID(d.roll),
			RollNumber:  d.roll,
			FullName:    d.name,
			Email:       d.email,
			DateOfBirth: d.dob,
		}
		s.Phone = optional(d.phone)
		s.Course = optional(d.course)
		s.Semester = optional(d.semester)
		s.Gender = optional(d.gender)
		s.DepartmentID = optional(d.dept)
		s.ClassID = optional(d.class)
		s.OrganizationID = optional(d.org)
		students = append(students, s)
	}
	return students
}

// DemoAttendance returns attendance for the demo students on consecutive
// days starting 2024-01-15.
func DemoAttendance() []models.AttendanceRecord {
	var records []models.AttendanceRecord
	id := 1
	for _, d := range demoRoster {
		for day, status := range d.statuses {
			records = append(records, models.AttendanceRecord{
				ID:        id,
				StudentID: StudentID(d.roll),
				Date:      models.NewDate(2024, time.January, 15+day),
				Status:    status,
			})
			id++
		}
	}
	return records
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return strPtr(s)
}
