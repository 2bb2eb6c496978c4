package app

import (
	"context"
	"net/http"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/holiday"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/post"
	"go-payroll/internal/rbac"
	"go-payroll/internal/shared/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	infra *Infra,
	logger *zap.Logger,
) error {
	db, gormDB, rdb := infra.SQLDB, infra.GormDB, infra.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	postRepo := post.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)

	// Without a broker nothing would drain the outbox, so writes invalidate
	// the cache inline instead.
	var outboxRepo kafka.OutboxRepository
	if cfg.Kafka.Broker != "" {
		outboxRepo = kafka.NewOutboxRepository(db)
	}

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(cfg.Auth.RBACModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	employeeService := employee.NewService(employeeRepo, logger)
	postService := post.NewService(postRepo)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		holidayRepo,
		outboxRepo,
		payroll.NewCache(rdb, cfg.Redis.CacheTTL),
		logger,
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	postHandler := post.NewHandler(postService)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(20, 40))
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		post.RegisterRoutes(api, postHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, logger, rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
