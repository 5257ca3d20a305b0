// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeleteUserRequest identifies the user to delete by username.
type DeleteUserRequest struct {
	Username string `json:"username"`
}

// UpdateUserRequest is the full-replace payload for a user's mutable fields.
type UpdateUserRequest struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// CreateTodoItemRequest is the payload for a new to-do item.
type CreateTodoItemRequest struct {
	Title string `json:"title"`
}

// UpdateTodoItemRequest is the full-replace payload for a to-do item.
type UpdateTodoItemRequest struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}
