// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"time"
)

// User is an account that can authenticate and own to-do items and themes.
type User struct {
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash []byte    `gorm:"not null" json:"-"`
	PasswordSalt []byte    `gorm:"not null" json:"-"`
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
}
