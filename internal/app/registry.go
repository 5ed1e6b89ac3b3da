package app

import (
	"os"

	"go-hrm/internal/attendance"
	"go-hrm/internal/auth"
	"go-hrm/internal/candidate"
	"go-hrm/internal/employee"
	"go-hrm/internal/filestore"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	files, err := filestore.NewDiskStore(uploadDir)
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	candidateRepo := candidate.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, counterRepo, files, rdb)
	candidateService := candidate.NewService(gormDB, candidateRepo, employeeRepo, counterRepo, outboxRepo, files)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo)
	leaveService := leave.NewService(leaveRepo, employeeRepo, attendanceRepo, files)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	candidateHandler := candidate.NewHandlerWithRedis(candidateService, rdb)
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, middleware.AuthMiddleware(authService))

		protected := api.Group("")
		protected.Use(
			middleware.AuthMiddleware(authService),
			middleware.RateLimitByOwner(rate.Limit(50), 100),
		)
		candidate.RegisterRoutes(protected, candidateHandler, rdb)
		employee.RegisterRoutes(protected, employeeHandler, rdb)
		attendance.RegisterRoutes(protected, attendanceHandler)
		leave.RegisterRoutes(protected, leaveHandler)
	}

	return nil
}
