package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"go-ems/internal/attendance"
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/notification"
	"go-ems/internal/rbac"
	"go-ems/internal/rbac/infra"
	"go-ems/internal/salary"
	"go-ems/internal/sales"
	"go-ems/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salesRepo := sales.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	relayClient := notification.NewHTTPRelayClient(
		os.Getenv("RELAY_URL"),
		os.Getenv("INTERNAL_API_KEY"),
	)
	notificationService := notification.NewService(notificationRepo, employeeRepo, relayClient, rdb)
	attendanceService := attendance.NewService(db, attendanceRepo)
	salesService := sales.NewService(db, salesRepo)
	salaryService := salary.NewServiceWithDeps(
		db,
		salaryRepo,
		employeeRepo,
		attendanceRepo,
		salesRepo,
		outboxRepo,
		notificationService,
		counterRepo,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	salesHandler := sales.NewHandler(salesService)
	salaryHandler := salary.NewHandlerWithRedis(salaryService, rdb)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		sales.RegisterRoutes(api, salesHandler, rbacService)
		salary.RegisterRoutes(api, salaryHandler, rbacService, zap.L(), rdb)
		notification.RegisterRoutes(api, notificationHandler)
	}

	return nil
}
