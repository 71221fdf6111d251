package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp167/masar/internal/data"
	"github.com/wisp167/masar/internal/server"
)

func TestVersion(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, server.Version+"\n", out.String())
}

func TestSeedRejectsMemoryStorage(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "--storage", "memory"})

	assert.ErrorContains(t, root.Execute(), "no lasting effect")
}

func TestSeedSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	root := newRootCmd()
	root.SetArgs([]string{"seed", "--storage", "sqlite", "--sqlite-path", path, "--log-level", "error"})
	require.NoError(t, root.Execute())

	kv, closer, err := server.OpenStorage(t.Context(), server.Config{Storage: server.StorageSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer closer.Close()

	stores, err := data.NewModels(kv).Stores.GetStores(t.Context())
	require.NoError(t, err)
	assert.Len(t, stores, 3)
}

func TestSeedReset(t *testing.T) {
	ctx := context.Background()
	models := data.NewModels(data.NewMemoryKV())
	_, err := models.Stores.AddStore(ctx, data.Store{Name: "Extra"})
	require.NoError(t, err)

	var reported []string
	require.NoError(t, seed(ctx, models, false, func(keys []string) { reported = keys }))
	assert.NotContains(t, reported, data.StoresKey, "existing stores are kept without reset")

	require.NoError(t, seed(ctx, models, true, func(keys []string) { reported = keys }))
	assert.Contains(t, reported, data.StoresKey)

	stores, err := models.Stores.GetStores(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 3)
}
