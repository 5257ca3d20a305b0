// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"time"
)

// TodoItem belongs to exactly one user and is removed with its owner.
type TodoItem struct {
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Title       string    `gorm:"not null" json:"title"`
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
}
