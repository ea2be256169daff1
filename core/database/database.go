package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a SQL connection (MySQL or SQLite) through GORM.
// The connection is verified with a ping before it is returned.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.timeout()

	var dialector gorm.Dialector
	switch cfg.Driver {
	case DriverMySQL, "":
		// Special characters in the password must be URL encoded in the DSN.
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		port := cfg.Port
		if port == 0 {
			port = 3306
		}
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, port, cfg.Name, timeout, timeout, timeout)
		dialector = mysql.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(cfg.Name)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}

	// Records are inserted one by one without batch atomicity, so the
	// implicit per-statement transaction is skipped.
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// Every connection to ":memory:" is a distinct database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
