// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todoapp/internal/auth"
	"todoapp/internal/models"
	"todoapp/internal/repository"
)

// GetTodoItems handles GET /todos, scoped to the caller's own items.
func (h *Handlers) GetTodoItems(c echo.Context) error {
	caller := auth.GetCaller(c.Request().Context())
	if caller == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User information is missing."})
	}

	items, err := h.repo.ListTodoItemsByUser(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// PostTodoItem handles POST /todos.
func (h *Handlers) PostTodoItem(c echo.Context) error {
	caller := auth.GetCaller(c.Request().Context())
	if caller == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User information is missing."})
	}

	var req CreateTodoItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title is required."})
	}

	item := &models.TodoItem{
		Title:  req.Title,
		UserID: caller.ID,
	}
	if err := h.repo.CreateTodoItem(c.Request().Context(), item); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// PutTodoItem handles PUT /todos/:id as a full replace of the mutable fields.
func (h *Handlers) PutTodoItem(c echo.Context) error {
	caller := auth.GetCaller(c.Request().Context())
	if caller == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User information is missing."})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	var req UpdateTodoItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title is required."})
	}

	err = h.repo.ReplaceTodoItem(c.Request().Context(), id, caller.ID, req.Title, req.IsCompleted)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Access forbidden"})
	case err != nil:
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteTodoItem handles DELETE /todos/:id.
func (h *Handlers) DeleteTodoItem(c echo.Context) error {
	caller := auth.GetCaller(c.Request().Context())
	if caller == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User information is missing."})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
	}

	err = h.repo.DeleteOwnedTodoItem(c.Request().Context(), id, caller.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Todo not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Access forbidden"})
	case err != nil:
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
