// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import (
	"encoding/json"
	"time"
)

// ColourTheme stores a named set of CSS colour overrides. System-defined
// themes have no owner; user themes carry the owning user id.
type ColourTheme struct {
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
	Name       string    `gorm:"not null" json:"name"`
	Colours    string    `gorm:"not null" json:"colours"`
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *int64    `gorm:"index" json:"user_id,omitempty"`
	SysDefined bool      `gorm:"not null;default:false" json:"sys_defined"`
	IsDefault  bool      `gorm:"not null;default:false" json:"is_default"`
	IsActive   bool      `gorm:"not null;default:false" json:"is_active"`
}

// ColourPair is one entry of the encoded Colours document.
type ColourPair struct {
	Property string `json:"colourProperty"`
	Value    string `json:"colourValue"`
}

// ColourPairs decodes the Colours column. Legacy rows may hold free-form
// strings instead of JSON; those decode to an empty slice without error.
func (t *ColourTheme) ColourPairs() []ColourPair {
	var pairs []ColourPair
	if err := json.Unmarshal([]byte(t.Colours), &pairs); err != nil {
		return nil
	}
	return pairs
}
