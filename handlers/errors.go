package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attendance_api/db"
	"attendance_api/filters"
)

// statusClientClosedRequest is nginx's code for a request the client gave up on.
const statusClientClosedRequest = 499

// respondError maps validation failures to 400 and store failures to 5xx.
// msg is the client-facing message for store failures.
func respondError(c *gin.Context, logger *zap.Logger, err error, msg string) {
	var verr *filters.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "param": verr.Param})
		return
	}

	if errors.Is(err, context.Canceled) {
		logger.Debug("request canceled", zap.Error(err), zap.String("path", c.FullPath()))
		c.AbortWithStatus(statusClientClosedRequest)
		return
	}

	status := http.StatusInternalServerError
	if errors.Is(err, db.ErrUnavailable) {
		status = http.StatusServiceUnavailable
	}
	logger.Error(msg,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
	)
	c.JSON(status, gin.H{"error": msg})
}
