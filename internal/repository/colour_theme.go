// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"gorm.io/gorm"

	"todoapp/internal/models"
)

// CreateColourTheme persists a new theme and assigns its ID.
func (r *Repository) CreateColourTheme(ctx context.Context, theme *models.ColourTheme) error {
	return r.db.WithContext(ctx).Create(theme).Error
}

// GetColourThemeByID retrieves a theme by its ID.
func (r *Repository) GetColourThemeByID(ctx context.Context, id int64) (*models.ColourTheme, error) {
	var theme models.ColourTheme
	if err := r.db.WithContext(ctx).First(&theme, id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &theme, nil
}

// ListColourThemes returns every theme, unfiltered by owner.
func (r *Repository) ListColourThemes(ctx context.Context) ([]models.ColourTheme, error) {
	themes := []models.ColourTheme{}
	if err := r.db.WithContext(ctx).Order("id").Find(&themes).Error; err != nil {
		return nil, err
	}
	return themes, nil
}

// ReplaceColourTheme overwrites the stored record with the given one. The
// existence check and the write run in one transaction so a replace of a
// vanished row reports ErrNotFound and leaves the store unmodified.
func (r *Repository) ReplaceColourTheme(ctx context.Context, theme *models.ColourTheme) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ColourTheme
		if err := tx.First(&existing, theme.ID).Error; err != nil {
			return wrapError(err)
		}
		theme.CreatedAt = existing.CreatedAt
		return tx.Save(theme).Error
	})
}

// DeleteColourTheme removes a theme by its ID.
func (r *Repository) DeleteColourTheme(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.ColourTheme{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
