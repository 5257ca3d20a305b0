// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"todoapp/internal/auth"
	"todoapp/internal/database"
	"todoapp/internal/models"
	"todoapp/internal/repository"
)

// NewTestDB creates an in-memory SQLite database for tests. Each call gets a
// uniquely named shared-cache database so parallel tests never collide.
func NewTestDB(t *testing.T) (*gorm.DB, *repository.Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestUser creates a test user in the database.
func NewTestUser(t *testing.T, repo *repository.Repository, username string, isAdmin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: []byte{0x00},
		PasswordSalt: []byte{0x00},
		IsAdmin:      isAdmin,
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

// NewTestTodoItem creates a test to-do item owned by the given user.
func NewTestTodoItem(t *testing.T, repo *repository.Repository, userID int64, title string, completed bool) *models.TodoItem {
	t.Helper()
	item := &models.TodoItem{
		Title:       title,
		IsCompleted: completed,
		UserID:      userID,
	}
	require.NoError(t, repo.CreateTodoItem(context.Background(), item))
	return item
}

// NewTestColourTheme creates a test colour theme.
func NewTestColourTheme(t *testing.T, repo *repository.Repository, theme *models.ColourTheme) *models.ColourTheme {
	t.Helper()
	require.NoError(t, repo.CreateColourTheme(context.Background(), theme))
	return theme
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// WithCaller attaches an authenticated caller to the context, the same way
// the middleware chain does for a verified token.
func WithCaller(c echo.Context, caller *auth.Caller) echo.Context {
	ctx := auth.SetCaller(c.Request().Context(), caller)
	c.SetRequest(c.Request().WithContext(ctx))
	return c
}

// DefaultColoursJSON mirrors the seed document shipped with the default theme.
const DefaultColoursJSON = `[{"colourProperty": "--button-bgcolour", "colourValue": "#00796b"}, ` +
	`{"colourProperty": "--button-hover-bgcolour", "colourValue": "#004d40"}, ` +
	`{"colourProperty": "--button-text-colour", "colourValue": "#ffffff"}, ` +
	`{"colourProperty": "--input-bgcolour", "colourValue": "#e0f7fa"}, ` +
	`{"colourProperty": "--input-border-colour", "colourValue": "#b2ebf2"}, ` +
	`{"colourProperty": "--table-header-bgcolour", "colourValue": "#f1f1db"}, ` +
	`{"colourProperty": "--table-border-colour", "colourValue": "#ddd"}, ` +
	`{"colourProperty": "--modal-bgcolour", "colourValue": "white"}, ` +
	`{"colourProperty": "--modal-overlay-bgcolour", "colourValue": "rgba(0, 0, 0, 0.5)"}, ` +
	`{"colourProperty": "--loading-spinner-colour", "colourValue": "#00796b"}, ` +
	`{"colourProperty": "--logout-button-bgcolour", "colourValue": "#f56c6c"}, ` +
	`{"colourProperty": "--portal-switch-button-bgcolour", "colourValue": "#409EFF"}]`
