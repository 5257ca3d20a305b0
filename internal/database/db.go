// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package database opens the SQLite store and applies migrations.
package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a database connection with tuned SQLite settings and runs
// all pending migrations.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "./data/app.db"
	}

	// Create the directory for file-based databases
	if !strings.HasPrefix(dsn, ":memory:") && !strings.Contains(dsn, "mode=memory") {
		dir := filepath.Dir(strings.TrimPrefix(dsn, "file:"))
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
	}

	dsn = addDefaultParams(dsn)

	// glebarez/sqlite is a pure-Go, CGO-free driver
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := configureSQLite(context.Background(), db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if err := RunMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// addDefaultParams adds recommended SQLite parameters if not already present.
func addDefaultParams(dsn string) string {
	defaults := map[string]string{
		"_txlock=immediate":           "_txlock",
		"_pragma=busy_timeout(5000)":  "_pragma=busy_timeout",
		"_pragma=foreign_keys(1)":     "_pragma=foreign_keys",
		"_pragma=journal_mode(WAL)":   "_pragma=journal_mode",
		"_pragma=synchronous(NORMAL)": "_pragma=synchronous",
	}

	for param, marker := range defaults {
		if strings.Contains(dsn, marker) {
			continue
		}
		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dsn += separator + param
	}

	return dsn
}

// configureSQLite sets PRAGMAs that cannot be passed through the DSN.
func configureSQLite(ctx context.Context, db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA temp_store = MEMORY",
		"PRAGMA cache_size = 2000",
	}

	for _, pragma := range pragmas {
		if err := db.WithContext(ctx).Exec(pragma).Error; err != nil {
			return err
		}
	}

	return nil
}
