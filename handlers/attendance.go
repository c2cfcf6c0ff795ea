package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attendance_api/filters"
	"attendance_api/stats"
)

type AttendanceHandler struct {
	store  AttendanceStore
	logger *zap.Logger
}

func NewAttendanceHandler(store AttendanceStore, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{store: store, logger: logger}
}

// GetAttendanceStats returns aggregate counts over all attendance records
// matching the date, department and organization filters.
func (h *AttendanceHandler) GetAttendanceStats(c *gin.Context) {
	f, err := filters.ParseStatsQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, h.logger, err, "Invalid query")
		return
	}

	counts, err := h.store.AttendanceCounts(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.logger, err, "Failed to fetch attendance statistics")
		return
	}

	c.JSON(http.StatusOK, stats.Overall(counts))
}
