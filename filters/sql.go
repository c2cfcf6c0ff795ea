package filters

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"attendance_api/models"
)

// SQL conditions assume students are aliased "s" and attendance "a".

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func substringPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func (f StudentFilter) Conditions() sq.And {
	conds := sq.And{}
	if f.Search != "" {
		pattern := substringPattern(f.Search)
		conds = append(conds, sq.Or{
			sq.ILike{"s.full_name": pattern},
			sq.ILike{"s.roll_number": pattern},
			sq.ILike{"s.email": pattern},
		})
	}
	if f.DepartmentID != "" {
		conds = append(conds, sq.Eq{"s.department_id": f.DepartmentID})
	}
	if f.ClassID != "" {
		conds = append(conds, sq.Eq{"s.class_id": f.ClassID})
	}
	if f.Course != "" {
		conds = append(conds, sq.ILike{"s.course": substringPattern(f.Course)})
	}
	if f.Semester != "" {
		conds = append(conds, sq.Eq{"s.semester": f.Semester})
	}
	if f.OrganizationID != "" {
		conds = append(conds, sq.Eq{"s.organization_id": f.OrganizationID})
	}
	return conds
}

func (f AttendanceFilter) Conditions() sq.And {
	conds := dateConditions(f.DateFrom, f.DateTo)
	if f.Status != "" {
		conds = append(conds, sq.Expr("LOWER(a.status) = ?", strings.ToLower(f.Status)))
	}
	return conds
}

func (f StatsFilter) Conditions() sq.And {
	conds := dateConditions(f.DateFrom, f.DateTo)
	if f.DepartmentID != "" {
		conds = append(conds, sq.Eq{"s.department_id": f.DepartmentID})
	}
	if f.OrganizationID != "" {
		conds = append(conds, sq.Eq{"s.organization_id": f.OrganizationID})
	}
	return conds
}

func dateConditions(from, to *models.Date) sq.And {
	conds := sq.And{}
	if from != nil {
		conds = append(conds, sq.GtOrEq{"a.date": *from})
	}
	if to != nil {
		conds = append(conds, sq.LtOrEq{"a.date": *to})
	}
	return conds
}
