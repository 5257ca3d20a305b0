// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapp/internal/models"
)

// CreateUser creates a new user in the database.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapError(err)
	}
	return &user, nil
}

// UserExists checks if a user with the given username exists.
func (r *Repository) UserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ReplaceUser overwrites the username and admin flag of an existing user.
// Check and write run in one transaction, so a concurrently deleted user
// reports ErrNotFound instead of being written back into the store.
func (r *Repository) ReplaceUser(ctx context.Context, id int64, username string, isAdmin bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return wrapError(err)
		}
		user.Username = username
		user.IsAdmin = isAdmin
		return tx.Save(&user).Error
	})
}

// ListUsernames returns the usernames of all users as a complete snapshot.
func (r *Repository) ListUsernames(ctx context.Context) ([]string, error) {
	usernames := []string{}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Pluck("username", &usernames).Error; err != nil {
		return nil, err
	}
	return usernames, nil
}

// DeleteUserByUsername removes the user and every to-do item they own in one
// transaction. Returns ErrNotFound when no row was deleted, which is how a
// losing concurrent delete observes that the winner got there first.
func (r *Repository) DeleteUserByUsername(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return wrapError(err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.TodoItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, user.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
