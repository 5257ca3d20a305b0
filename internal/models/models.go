// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package models defines the persisted entities.
package models

// AllModels returns all models for database migration checks.
func AllModels() []any {
	return []any{
		&User{},
		&TodoItem{},
		&ColourTheme{},
	}
}
