package main

import (
	"time"

	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	infra, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.App.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(logger),
	)
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
