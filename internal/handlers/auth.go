// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	authsvc "todoapp/internal/services/auth"
)

// Register handles POST /auth/register.
func (h *Handlers) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, authsvc.ErrInvalidUsername):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid username format"})
	case errors.Is(err, authsvc.ErrPasswordRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Password is required."})
	case errors.Is(err, authsvc.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Username already exists"})
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User registered successfully"})
}

// Login handles POST /auth/login and returns a signed access token.
func (h *Handlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	token, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
