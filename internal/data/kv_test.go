package data

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// kvBackends returns one fresh instance of every backend that can run
// without external services.
func kvBackends(t *testing.T) map[string]KV {
	t.Helper()
	ctx := context.Background()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "masar.db"))
	require.NoError(t, err, "open sqlite")
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	sqliteKV := NewSQLKV(db, SQLite)
	require.NoError(t, sqliteKV.Migrate(ctx), "migrate sqlite")

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]KV{
		"memory": NewMemoryKV(),
		"sqlite": sqliteKV,
		"redis":  NewRedisKV(client),
	}
}

func TestKVContract(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok, "missing key should not be found")

			require.NoError(t, kv.Set(ctx, "k", []byte(`["a"]`)))
			v, ok, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["a"]`, string(v))

			require.NoError(t, kv.Set(ctx, "k", []byte(`["b"]`)), "overwrite")
			v, _, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, `["b"]`, string(v))

			require.NoError(t, kv.Delete(ctx, "k"))
			_, ok, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok, "deleted key should not be found")

			assert.NoError(t, kv.Delete(ctx, "k"), "deleting a missing key is a no-op")
		})
	}
}

func TestScopedKeepsSessionsApart(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryKV()
	a := Scoped(base, "session:a:")
	b := Scoped(base, "session:b:")

	require.NoError(t, a.Set(ctx, CurrentUserKey, []byte(`{"id":"1"}`)))

	_, ok, err := b.Get(ctx, CurrentUserKey)
	require.NoError(t, err)
	assert.False(t, ok, "scope b must not see scope a's keys")

	raw, ok, err := base.Get(ctx, "session:a:"+CurrentUserKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"1"}`, string(raw))

	require.NoError(t, a.Delete(ctx, CurrentUserKey))
	assert.Equal(t, 0, base.Len())
}

func TestMemoryKVCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	value := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'x'

	got, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}
