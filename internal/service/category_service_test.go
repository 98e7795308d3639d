package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceListWithCounts(t *testing.T) {
	f := newCatalogFixture(t)

	views, err := f.categories.ListWithCounts(false)
	require.NoError(t, err)
	require.Len(t, views, 6)

	byName := make(map[string]CategoryView, len(views))
	for _, v := range views {
		byName[v.Name] = v
	}
	assert.Equal(t, 156, byName["Electronics"].Count)
	assert.Equal(t, int64(2), byName["Electronics"].ProductCount)
	assert.Equal(t, int64(3), byName["Computing"].ProductCount)
	assert.Equal(t, int64(2), byName["Audio"].ProductCount)
	assert.Equal(t, int64(2), byName["Accessories"].ProductCount)
	assert.Equal(t, int64(0), byName["Photography"].ProductCount)
}

func TestCategoryServiceFeatured(t *testing.T) {
	f := newCatalogFixture(t)

	views, err := f.categories.ListWithCounts(true)
	require.NoError(t, err)
	names := make([]string, 0, len(views))
	for _, v := range views {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"Electronics", "Audio", "Computing", "Accessories"}, names)
}

func TestCategoryServiceGet(t *testing.T) {
	f := newCatalogFixture(t)

	category, err := f.categories.Get("Gaming")
	require.NoError(t, err)
	assert.Equal(t, 45, category.Count)

	_, err = f.categories.Get("Garden")
	assert.True(t, errors.Is(err, ErrCategoryNotFound))
}

func TestStoreInfoContent(t *testing.T) {
	info := NewStoreInfoService()

	assert.NotEmpty(t, info.Hero().Title)
	about := info.About()
	assert.Len(t, about.Stats, 4)
	assert.NotEmpty(t, about.Team)
	assert.NotEmpty(t, about.Values)
}
