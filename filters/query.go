package filters

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"attendance_api/models"
)

// ValidationError reports a query parameter that was rejected.
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
}

// StudentCriteria is everything the students listing is filtered by.
type StudentCriteria struct {
	Students   StudentFilter
	Attendance AttendanceFilter
	Page       Page
}

type pageWindow struct {
	Limit  int `form:"limit" validate:"min=0,max=100"`
	Offset int `form:"offset" validate:"min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseStudentQuery builds the listing criteria from request query values.
// Empty parameters are treated as absent.
func ParseStudentQuery(q url.Values) (StudentCriteria, error) {
	var c StudentCriteria

	var (
		window pageWindow
		err    error
	)
	if window.Limit, err = parseInt(q, "limit", DefaultLimit); err != nil {
		return c, err
	}
	if window.Offset, err = parseInt(q, "offset", 0); err != nil {
		return c, err
	}
	if err := validateStruct(window); err != nil {
		return c, err
	}

	from, to, err := parseDateRange(q)
	if err != nil {
		return c, err
	}

	c.Students = StudentFilter{
		Search:         q.Get("search"),
		DepartmentID:   q.Get("department_id"),
		ClassID:        q.Get("class_id"),
		Course:         q.Get("course"),
		Semester:       q.Get("semester"),
		OrganizationID: q.Get("organization_id"),
	}
	c.Attendance = AttendanceFilter{
		DateFrom: from,
		DateTo:   to,
		Status:   q.Get("attendance_status"),
	}
	c.Page = Page{Limit: window.Limit, Offset: window.Offset}
	return c, nil
}

// ParseStatsQuery builds the aggregate statistics filter from query values.
func ParseStatsQuery(q url.Values) (StatsFilter, error) {
	from, to, err := parseDateRange(q)
	if err != nil {
		return StatsFilter{}, err
	}
	return StatsFilter{
		DateFrom:       from,
		DateTo:         to,
		DepartmentID:   q.Get("department_id"),
		OrganizationID: q.Get("organization_id"),
	}, nil
}

func parseInt(q url.Values, param string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(param))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValidationError{Param: param, Message: "must be an integer"}
	}
	return n, nil
}

func parseDateRange(q url.Values) (from, to *models.Date, err error) {
	if from, err = parseDate(q, "date_from"); err != nil {
		return nil, nil, err
	}
	if to, err = parseDate(q, "date_to"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseDate(q url.Values, param string) (*models.Date, error) {
	raw := strings.TrimSpace(q.Get(param))
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, &ValidationError{Param: param, Message: "must be a date in YYYY-MM-DD format"}
	}
	return &d, nil
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	msg := fmt.Sprintf("failed %s validation", fe.Tag())
	switch fe.Tag() {
	case "max":
		msg = "must be at most " + fe.Param()
	case "min":
		msg = "must be at least " + fe.Param()
	}
	return &ValidationError{Param: fe.Field(), Message: msg}
}
