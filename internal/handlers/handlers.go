// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP handlers. They validate input, resolve
// the caller and delegate to the repository; anything unexpected is returned
// to Echo's error handler as a 5xx.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todoapp/internal/repository"
	authsvc "todoapp/internal/services/auth"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	repo        *repository.Repository
	authService *authsvc.Service
}

// New creates a new Handlers instance.
func New(repo *repository.Repository, authService *authsvc.Service) *Handlers {
	return &Handlers{repo: repo, authService: authService}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
