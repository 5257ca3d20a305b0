// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package repository is the persistence collaborator. All read-check-then-write
// sequences are issued as single transactions so the store serializes races.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// ErrForbidden is returned when the record exists but belongs to another user.
var ErrForbidden = errors.New("record owned by another user")

// Repository wraps GORM for database operations.
type Repository struct {
	db *gorm.DB
}

// New creates a new Repository instance.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB returns the underlying GORM DB for direct access.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// wrapError converts GORM errors to repository errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
