package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attendance_api/models"
)

// LookupHandler serves the static department and class lists.
type LookupHandler struct {
	departments []models.Department
	classes     []models.Class
}

func NewLookupHandler(departments []models.Department, classes []models.Class) *LookupHandler {
	return &LookupHandler{departments: departments, classes: classes}
}

func (h *LookupHandler) GetDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.departments)
}

func (h *LookupHandler) GetClasses(c *gin.Context) {
	c.JSON(http.StatusOK, h.classes)
}
