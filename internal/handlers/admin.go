// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todoapp/internal/auth"
	"todoapp/internal/repository"
)

// GetUsernames handles GET /admin/users. The list is a complete snapshot,
// empty when no users exist, and gated to administrators.
func (h *Handlers) GetUsernames(c echo.Context) error {
	caller := auth.GetCaller(c.Request().Context())
	if caller == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User information is missing."})
	}
	if !caller.IsAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Access forbidden"})
	}

	usernames, err := h.repo.ListUsernames(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usernames)
}

// DeleteUser handles DELETE /admin/users. The user row and all to-do items
// they own go away in one transaction; a concurrent duplicate delete sees
// not-found.
func (h *Handlers) DeleteUser(c echo.Context) error {
	var req DeleteUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username is required."})
	}

	if err := h.repo.DeleteUserByUsername(c.Request().Context(), req.Username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found."})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateUser handles PUT /admin/users/:id, overwriting username and admin flag.
func (h *Handlers) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username is required."})
	}

	if err := h.repo.ReplaceUser(c.Request().Context(), id, req.Username, req.IsAdmin); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found."})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
