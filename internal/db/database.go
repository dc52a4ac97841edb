package db

import (
	"fmt"

	"github.com/citra/storefront/config"
	appLogger "github.com/citra/storefront/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the postgres catalog database
func Initialize(cfg *config.DatabaseConfig) error {
	appLogger.Info("Connecting to database", appLogger.Fields{
		"host":     cfg.Host,
		"port":     cfg.Port,
		"database": cfg.DBName,
		"user":     cfg.User,
	})

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// catalog traffic is a handful of snapshot reads/writes
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)

	appLogger.Info("Database connection established successfully", appLogger.Fields{
		"max_idle_conns": 2,
		"max_open_conns": 10,
	})
	return nil
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return DB
}
