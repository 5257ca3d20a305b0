// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/internal/models"
	"todoapp/internal/repository"
	"todoapp/internal/testutil"
)

func TestCreateColourTheme(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	theme := &models.ColourTheme{
		Name:       "Default Theme",
		Colours:    testutil.DefaultColoursJSON,
		SysDefined: true,
		IsDefault:  true,
	}
	err := repo.CreateColourTheme(ctx, theme)

	require.NoError(t, err)
	assert.NotZero(t, theme.ID)
}

func TestGetColourThemeByID_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetColourThemeByID(context.Background(), 999)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListColourThemes(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestColourTheme(t, repo, &models.ColourTheme{Name: "Default Theme", Colours: testutil.DefaultColoursJSON, SysDefined: true, IsDefault: true})
	testutil.NewTestColourTheme(t, repo, &models.ColourTheme{Name: "Dark Theme", Colours: "[]"})

	themes, err := repo.ListColourThemes(ctx)

	require.NoError(t, err)
	assert.Len(t, themes, 2)
}

func TestReplaceColourTheme(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	theme := testutil.NewTestColourTheme(t, repo, &models.ColourTheme{Name: "Default Theme", Colours: testutil.DefaultColoursJSON, SysDefined: true, IsDefault: true})
	createdAt := theme.CreatedAt

	updated := &models.ColourTheme{
		ID:      theme.ID,
		Name:    "Updated Theme",
		Colours: `[{"colourProperty":"--bgcolour","colourValue":"#000000"}]`,
	}
	require.NoError(t, repo.ReplaceColourTheme(ctx, updated))

	retrieved, err := repo.GetColourThemeByID(ctx, theme.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Theme", retrieved.Name)
	assert.Equal(t, updated.Colours, retrieved.Colours)
	assert.Equal(t, createdAt.Unix(), retrieved.CreatedAt.Unix())
}

func TestReplaceColourTheme_NotFoundLeavesStoreUnmodified(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	existing := testutil.NewTestColourTheme(t, repo, &models.ColourTheme{Name: "Default Theme", Colours: testutil.DefaultColoursJSON, SysDefined: true, IsDefault: true})

	err := repo.ReplaceColourTheme(ctx, &models.ColourTheme{
		ID:      999,
		Name:    "Ghost Theme",
		Colours: "[]",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	themes, listErr := repo.ListColourThemes(ctx)
	require.NoError(t, listErr)
	require.Len(t, themes, 1)
	assert.Equal(t, existing.Name, themes[0].Name)
}

func TestDeleteColourTheme(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	theme := testutil.NewTestColourTheme(t, repo, &models.ColourTheme{Name: "Default Theme", Colours: testutil.DefaultColoursJSON, SysDefined: true, IsDefault: true})

	require.NoError(t, repo.DeleteColourTheme(ctx, theme.ID))

	_, err := repo.GetColourThemeByID(ctx, theme.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteColourTheme_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	err := repo.DeleteColourTheme(context.Background(), 999)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
