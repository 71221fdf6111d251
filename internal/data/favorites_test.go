package data

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFavoriteToggle(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)

	on, err := m.Favorites.Toggle(ctx, FavoriteStore, "user1", "store1")
	require.NoError(t, err)
	assert.True(t, on)

	fav, err := m.Favorites.IsFavorite(ctx, FavoriteStore, "user1", "store1")
	require.NoError(t, err)
	assert.True(t, fav)

	raw, ok, err := m.KV.Get(ctx, "masar_favorites_store_user1")
	require.NoError(t, err)
	require.True(t, ok, "favorites live under the per-user key")
	assert.JSONEq(t, `["store1"]`, string(raw))

	off, err := m.Favorites.Toggle(ctx, FavoriteStore, "user1", "store1")
	require.NoError(t, err)
	assert.False(t, off)

	ids, err := m.Favorites.List(ctx, FavoriteStore, "user1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoritesAreSeparatedByType(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)

	_, err := m.Favorites.Toggle(ctx, FavoriteProduct, "user1", "product1")
	require.NoError(t, err)

	stores, err := m.Favorites.List(ctx, FavoriteStore, "user1")
	require.NoError(t, err)
	assert.Empty(t, stores)

	products, err := m.Favorites.List(ctx, FavoriteProduct, "user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"product1"}, products)
}

func TestFavoritesRejectUnknownType(t *testing.T) {
	m := newTestModels(t)
	_, err := m.Favorites.Toggle(context.Background(), ItemType("service"), "user1", "service1")
	assert.ErrorIs(t, err, ErrInvalidItemType)
}

func TestFavoriteToggleConcurrent(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)
	const n = 25

	var g errgroup.Group
	want := make([]string, n)
	for i := 0; i < n; i++ {
		want[i] = fmt.Sprintf("product%d", i)
		g.Go(func() error {
			_, err := m.Favorites.Toggle(ctx, FavoriteProduct, "user1", want[i])
			return err
		})
	}
	require.NoError(t, g.Wait())

	ids, err := m.Favorites.List(ctx, FavoriteProduct, "user1")
	require.NoError(t, err)
	assert.ElementsMatch(t, want, ids)
}
