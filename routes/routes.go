package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"attendance_api/handlers"
	"attendance_api/middleware"
	"attendance_api/models"
)

// SetupRoutes configures all the routes for the application. When jwtSecret
// is empty the API is public.
func SetupRoutes(r *gin.Engine, store handlers.AttendanceStore, logger *zap.Logger, jwtSecret []byte) {
	// Browser dashboards call the API from other origins
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	r.Use(cors.New(config))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, logger)
	studentHandler := handlers.NewStudentHandler(store, logger)
	attendanceHandler := handlers.NewAttendanceHandler(store, logger)
	lookupHandler := handlers.NewLookupHandler(models.Departments, models.Classes)

	r.GET("/health", healthHandler.HealthCheck)

	api := r.Group("/api")
	if len(jwtSecret) > 0 {
		api.Use(middleware.AuthMiddleware(jwtSecret, logger))
	}
	{
		api.GET("/students", studentHandler.GetStudents)
		api.GET("/attendance/stats", attendanceHandler.GetAttendanceStats)
		api.GET("/departments", lookupHandler.GetDepartments)
		api.GET("/classes", lookupHandler.GetClasses)
	}
}

// NewRouter builds an engine with logging and recovery middleware and all
// routes registered.
func NewRouter(store handlers.AttendanceStore, logger *zap.Logger, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(logger), middleware.RequestLogger(logger))
	SetupRoutes(r, store, logger, jwtSecret)
	return r
}
