// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapp/internal/models"
)

// CreateTodoItem creates a new to-do item.
func (r *Repository) CreateTodoItem(ctx context.Context, item *models.TodoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetTodoItemByID retrieves a to-do item by its ID.
func (r *Repository) GetTodoItemByID(ctx context.Context, id int64) (*models.TodoItem, error) {
	var item models.TodoItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &item, nil
}

// ListTodoItemsByUser returns all to-do items owned by the given user.
func (r *Repository) ListTodoItemsByUser(ctx context.Context, userID int64) ([]models.TodoItem, error) {
	items := []models.TodoItem{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceTodoItem overwrites the title and completion flag of an item owned
// by ownerID. Ownership check and write run in one transaction; items owned
// by someone else report ErrForbidden, vanished items ErrNotFound.
func (r *Repository) ReplaceTodoItem(ctx context.Context, id, ownerID int64, title string, completed bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.TodoItem
		if err := tx.First(&item, id).Error; err != nil {
			return wrapError(err)
		}
		if item.UserID != ownerID {
			return ErrForbidden
		}
		item.Title = title
		item.IsCompleted = completed
		return tx.Save(&item).Error
	})
}

// DeleteOwnedTodoItem removes a to-do item, provided ownerID owns it.
func (r *Repository) DeleteOwnedTodoItem(ctx context.Context, id, ownerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.TodoItem
		if err := tx.First(&item, id).Error; err != nil {
			return wrapError(err)
		}
		if item.UserID != ownerID {
			return ErrForbidden
		}
		res := tx.Delete(&models.TodoItem{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
