// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todoapp/internal/models"
	"todoapp/internal/repository"
)

// GetColourThemes handles GET /themes. The list is global, covering system
// themes and every user's themes alike.
func (h *Handlers) GetColourThemes(c echo.Context) error {
	themes, err := h.repo.ListColourThemes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themes)
}

// GetColourTheme handles GET /themes/:id.
func (h *Handlers) GetColourTheme(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	theme, err := h.repo.GetColourThemeByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Theme not found."})
		}
		return err
	}
	return c.JSON(http.StatusOK, theme)
}

// PostColourTheme handles POST /themes, persisting a new theme and answering
// with the created record and its location.
func (h *Handlers) PostColourTheme(c echo.Context) error {
	var theme models.ColourTheme
	if err := c.Bind(&theme); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if theme.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required."})
	}

	theme.ID = 0
	if err := h.repo.CreateColourTheme(c.Request().Context(), &theme); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%d", c.Path(), theme.ID))
	return c.JSON(http.StatusCreated, theme)
}

// PutColourTheme handles PUT /themes/:id as a full-record replace. A body id
// that disagrees with the path is rejected before any store access.
func (h *Handlers) PutColourTheme(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	var theme models.ColourTheme
	if err := c.Bind(&theme); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if theme.ID != 0 && theme.ID != id {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Mismatched theme ID"})
	}
	theme.ID = id

	if err := h.repo.ReplaceColourTheme(c.Request().Context(), &theme); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Theme not found."})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteColourTheme handles DELETE /themes/:id.
func (h *Handlers) DeleteColourTheme(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	if err := h.repo.DeleteColourTheme(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Theme not found."})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
