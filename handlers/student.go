package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attendance_api/filters"
	"attendance_api/models"
	"attendance_api/stats"
)

type StudentHandler struct {
	store  AttendanceStore
	logger *zap.Logger
}

func NewStudentHandler(store AttendanceStore, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{store: store, logger: logger}
}

// GetStudents lists students matching the query together with their
// filtered attendance records and attendance statistics.
func (h *StudentHandler) GetStudents(c *gin.Context) {
	criteria, err := filters.ParseStudentQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, h.logger, err, "Invalid query")
		return
	}

	ctx := c.Request.Context()
	students, err := h.store.ListStudents(ctx, criteria.Students, criteria.Page)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch students")
		return
	}

	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	records, err := h.store.ListAttendance(ctx, ids, criteria.Attendance)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch attendance records")
		return
	}

	views := make([]models.StudentView, 0, len(students))
	for _, s := range students {
		views = append(views, stats.BuildStudentView(s, records[s.ID]))
	}

	c.JSON(http.StatusOK, views)
}
