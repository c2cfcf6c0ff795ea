package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"attendance_api/config"
	"attendance_api/db"
	"attendance_api/handlers"
	"attendance_api/routes"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var store handlers.AttendanceStore
	switch cfg.Store {
	case config.StoreMemory:
		store = db.NewMemoryStore(db.DemoStudents(), db.DemoAttendance())
		logger.Info("serving demo dataset from memory")
	default:
		database, err := db.Initialize(ctx, db.Config{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			DBName:   cfg.DBName,
			SSLMode:  cfg.DBSSLMode,
		})
		if err != nil {
			logger.Fatal("Error connecting to the database", zap.Error(err))
		}
		defer database.Close()

		if err := db.InitSchema(ctx, database); err != nil {
			logger.Fatal("Error initializing database schema", zap.Error(err))
		}
		if cfg.SeedData {
			if err := db.SeedData(ctx, database); err != nil {
				logger.Warn("Error seeding demo data", zap.Error(err))
			}
		}
		store = db.NewRepository(database)
	}

	r := routes.NewRouter(store, logger, []byte(cfg.JWTSecret))

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
