package app

import (
	"database/sql"
	"fmt"

	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one binary.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return &Infra{GormDB: gormDB, SQLDB: sqlDB}, nil
}

// BuildApp connects Postgres and Redis and registers every module on router.
// The returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg *config.Config) (*Infra, error) {
	infra, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	infra.Redis, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}

	if err := registerModules(router, cfg, infra, zap.L()); err != nil {
		infra.Close()
		return nil, err
	}
	return infra, nil
}
