// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package database_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todoapp/internal/database"
	"todoapp/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close(db))
	})
	return db
}

func TestOpen_RunsMigrations(t *testing.T) {
	db := openTestDB(t)

	var tables []string
	err := db.Raw(
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name",
	).Scan(&tables).Error
	require.NoError(t, err)

	assert.Contains(t, tables, "users")
	assert.Contains(t, tables, "todo_items")
	assert.Contains(t, tables, "colour_themes")
	assert.Contains(t, tables, "goose_db_version")
}

func TestMigrations_CoverAllModels(t *testing.T) {
	db := openTestDB(t)

	for _, model := range models.AllModels() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
}

func TestMigrateDown_RollsBackLastMigration(t *testing.T) {
	db := openTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, database.MigrateDown(sqlDB))
	assert.False(t, db.Migrator().HasTable(&models.ColourTheme{}))
	assert.True(t, db.Migrator().HasTable(&models.TodoItem{}))

	require.NoError(t, database.RunMigrations(sqlDB))
	assert.True(t, db.Migrator().HasTable(&models.ColourTheme{}))
}

func TestOpen_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var enabled int
	err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error
	require.NoError(t, err)
	assert.Equal(t, 1, enabled)
}

func TestOpen_IsIdempotentOnMigrations(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := database.Open(dsn)
	require.NoError(t, err)

	// a second open against the same database must not re-apply anything
	db2, err := database.Open(dsn)
	require.NoError(t, err)

	require.NoError(t, database.Close(db2))
	require.NoError(t, database.Close(db))
}
