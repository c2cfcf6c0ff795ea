package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"attendance_api/models"
)

func ptr(s string) *string { return &s }

func date(day int) *models.Date {
	d := models.NewDate(2024, time.January, day)
	return &d
}

func sampleStudents() []models.Student {
	return []models.Student{
		{ID: "1", RollNumber: "R100", FullName: "Jane Doe", Email: "jane@example.com",
			Course: ptr("Computer Science"), Semester: ptr("6"), DepartmentID: ptr("dept1"), ClassID: ptr("class1"), OrganizationID: ptr("org1")},
		{ID: "2", RollNumber: "R200", FullName: "John Smith", Email: "jsmith@doe.org",
			Course: ptr("Electronics"), Semester: ptr("4"), DepartmentID: ptr("dept2"), ClassID: ptr("class2"), OrganizationID: ptr("org1")},
		{ID: "3", RollNumber: "DOE-3", FullName: "Ann Lee", Email: "ann@example.com",
			Course: ptr("Applied Computer Science"), Semester: ptr("6"), DepartmentID: ptr("dept1"), OrganizationID: ptr("org2")},
		{ID: "4", RollNumber: "R400", FullName: "Bob Stone", Email: "bob@example.com"},
	}
}

func ids(students []models.Student) []string {
	out := make([]string, 0, len(students))
	for _, s := range students {
		out = append(out, s.ID)
	}
	return out
}

func TestStudentFilterPredicate(t *testing.T) {
	tests := []struct {
		name   string
		filter StudentFilter
		want   []string
	}{
		{"no criteria", StudentFilter{}, []string{"1", "2", "3", "4"}},
		{"search matches name, email or roll number", StudentFilter{Search: "doe"}, []string{"1", "2", "3"}},
		{"search is case insensitive", StudentFilter{Search: "JANE"}, []string{"1"}},
		{"department", StudentFilter{DepartmentID: "dept1"}, []string{"1", "3"}},
		{"class", StudentFilter{ClassID: "class2"}, []string{"2"}},
		{"course substring", StudentFilter{Course: "computer"}, []string{"1", "3"}},
		{"semester exact", StudentFilter{Semester: "6"}, []string{"1", "3"}},
		{"organization", StudentFilter{OrganizationID: "org2"}, []string{"3"}},
		{"criteria combine with and", StudentFilter{Search: "doe", DepartmentID: "dept1", Semester: "6"}, []string{"1", "3"}},
		{"unknown department matches nothing", StudentFilter{DepartmentID: "nope"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleStudents(), tt.filter.Predicate())
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestStudentFilterIdempotent(t *testing.T) {
	f := StudentFilter{Search: "doe", OrganizationID: "org1"}
	once := Apply(sampleStudents(), f.Predicate())
	twice := Apply(once, f.Predicate())
	assert.Equal(t, once, twice)
}

func TestSearchIsUnionOfFields(t *testing.T) {
	students := sampleStudents()
	term := "doe"
	union := Apply(students, Any(
		func(s models.Student) bool { return containsFold(s.FullName, term) },
		func(s models.Student) bool { return containsFold(s.RollNumber, term) },
		func(s models.Student) bool { return containsFold(s.Email, term) },
	))
	assert.Equal(t, union, Apply(students, StudentFilter{Search: term}.Predicate()))
}

func TestAttendanceFilterPredicate(t *testing.T) {
	records := []models.AttendanceRecord{
		{ID: 1, Date: *date(1), Status: "Present"},
		{ID: 2, Date: *date(2), Status: "absent"},
		{ID: 3, Date: *date(3), Status: "Present"},
	}

	recordIDs := func(rs []models.AttendanceRecord) []int {
		out := []int{}
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter AttendanceFilter
		want   []int
	}{
		{"no criteria", AttendanceFilter{}, []int{1, 2, 3}},
		{"status", AttendanceFilter{Status: "absent"}, []int{2}},
		{"status is case insensitive", AttendanceFilter{Status: "PRESENT"}, []int{1, 3}},
		{"unknown status", AttendanceFilter{Status: "excused"}, []int{}},
		{"inclusive range", AttendanceFilter{DateFrom: date(2), DateTo: date(3)}, []int{2, 3}},
		{"from only", AttendanceFilter{DateFrom: date(3)}, []int{3}},
		{"to only", AttendanceFilter{DateTo: date(1)}, []int{1}},
		{"empty range", AttendanceFilter{DateFrom: date(3), DateTo: date(1)}, []int{}},
		{"range and status", AttendanceFilter{DateFrom: date(2), Status: "present"}, []int{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recordIDs(Apply(records, tt.filter.Predicate())))
		})
	}
}

func TestStatsFilterPredicate(t *testing.T) {
	students := sampleStudents()
	rows := []StatsRow{
		{Record: models.AttendanceRecord{ID: 1, Date: *date(1)}, Student: students[0]},
		{Record: models.AttendanceRecord{ID: 2, Date: *date(5)}, Student: students[1]},
		{Record: models.AttendanceRecord{ID: 3, Date: *date(5)}, Student: students[2]},
		{Record: models.AttendanceRecord{ID: 4, Date: *date(9)}, Student: students[3]},
	}

	count := func(f StatsFilter) int { return len(Apply(rows, f.Predicate())) }

	assert.Equal(t, 4, count(StatsFilter{}))
	assert.Equal(t, 2, count(StatsFilter{DepartmentID: "dept1"}))
	assert.Equal(t, 2, count(StatsFilter{OrganizationID: "org1"}))
	assert.Equal(t, 2, count(StatsFilter{DateFrom: date(5), DateTo: date(5)}))
	assert.Equal(t, 1, count(StatsFilter{DateFrom: date(5), DepartmentID: "dept1"}))
	assert.Equal(t, 0, count(StatsFilter{OrganizationID: "org9"}))
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		page       Page
		n          int
		start, end int
	}{
		{Page{Limit: 50}, 10, 0, 10},
		{Page{Limit: 3, Offset: 3}, 10, 3, 6},
		{Page{Limit: 3, Offset: 9}, 10, 9, 10},
		{Page{Limit: 3, Offset: 20}, 10, 10, 10},
		{Page{Limit: 0}, 10, 0, 0},
	}
	for _, tt := range tests {
		start, end := tt.page.Bounds(tt.n)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestAllAndAny(t *testing.T) {
	yes := func(int) bool { return true }
	no := func(int) bool { return false }

	assert.True(t, All[int]()(1))
	assert.False(t, Any[int]()(1))
	assert.False(t, All[int](yes, no)(1))
	assert.True(t, Any[int](no, yes)(1))
}
