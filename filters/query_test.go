package filters

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudentQueryDefaults(t *testing.T) {
	c, err := ParseStudentQuery(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, Page{Limit: DefaultLimit, Offset: 0}, c.Page)
	assert.Equal(t, StudentFilter{}, c.Students)
	assert.Equal(t, AttendanceFilter{}, c.Attendance)
}

func TestParseStudentQuery(t *testing.T) {
	q := url.Values{
		"search":            {"doe"},
		"department_id":     {"dept1"},
		"class_id":          {"class1"},
		"course":            {"Computer"},
		"semester":          {"6"},
		"organization_id":   {"org1"},
		"date_from":         {"2024-01-01"},
		"date_to":           {"2024-01-31"},
		"attendance_status": {"Absent"},
		"limit":             {"100"},
		"offset":            {"20"},
	}

	c, err := ParseStudentQuery(q)
	require.NoError(t, err)

	assert.Equal(t, StudentFilter{
		Search:         "doe",
		DepartmentID:   "dept1",
		ClassID:        "class1",
		Course:         "Computer",
		Semester:       "6",
		OrganizationID: "org1",
	}, c.Students)
	require.NotNil(t, c.Attendance.DateFrom)
	require.NotNil(t, c.Attendance.DateTo)
	assert.Equal(t, "2024-01-01", c.Attendance.DateFrom.String())
	assert.Equal(t, "2024-01-31", c.Attendance.DateTo.String())
	assert.Equal(t, "Absent", c.Attendance.Status)
	assert.Equal(t, Page{Limit: 100, Offset: 20}, c.Page)
}

func TestParseStudentQueryEmptyValuesAreAbsent(t *testing.T) {
	c, err := ParseStudentQuery(url.Values{"date_from": {""}, "limit": {""}, "search": {""}})
	require.NoError(t, err)

	assert.Nil(t, c.Attendance.DateFrom)
	assert.Equal(t, DefaultLimit, c.Page.Limit)
	assert.Empty(t, c.Students.Search)
}

func TestParseStudentQueryRejects(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		param string
		msg   string
	}{
		{"limit above max", url.Values{"limit": {"150"}}, "limit", "must be at most 100"},
		{"negative limit", url.Values{"limit": {"-1"}}, "limit", "must be at least 0"},
		{"negative offset", url.Values{"offset": {"-5"}}, "offset", "must be at least 0"},
		{"non numeric limit", url.Values{"limit": {"ten"}}, "limit", "must be an integer"},
		{"non numeric offset", url.Values{"offset": {"1.5"}}, "offset", "must be an integer"},
		{"malformed date_from", url.Values{"date_from": {"2024-13-01"}}, "date_from", "must be a date in YYYY-MM-DD format"},
		{"malformed date_to", url.Values{"date_to": {"yesterday"}}, "date_to", "must be a date in YYYY-MM-DD format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStudentQuery(tt.query)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.param, verr.Param)
			assert.Equal(t, tt.msg, verr.Message)
		})
	}
}

func TestParseStatsQuery(t *testing.T) {
	f, err := ParseStatsQuery(url.Values{
		"date_from":       {"2024-01-01"},
		"department_id":   {"dept2"},
		"organization_id": {"org1"},
		// not a stats criterion
		"attendance_status": {"present"},
	})
	require.NoError(t, err)

	require.NotNil(t, f.DateFrom)
	assert.Equal(t, "2024-01-01", f.DateFrom.String())
	assert.Nil(t, f.DateTo)
	assert.Equal(t, "dept2", f.DepartmentID)
	assert.Equal(t, "org1", f.OrganizationID)
}

func TestParseStatsQueryRejectsBadDate(t *testing.T) {
	_, err := ParseStatsQuery(url.Values{"date_to": {"01/02/2024"}})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "date_to", verr.Param)
	assert.Equal(t, "invalid date_to: must be a date in YYYY-MM-DD format", verr.Error())
}
