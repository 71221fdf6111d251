package data

import (
	"context"
	"sync"
)

// KV is the key-value store the repository persists into. Values are opaque
// JSON documents.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}

type MemoryKV struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string][]byte)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.items[key] = v
	return nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryKV) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

type scopedKV struct {
	kv     KV
	prefix string
}

// Scoped returns a view of kv where every key is prefixed. A scope plays the
// part of one client's private storage, e.g. the signed-in user of a session.
func Scoped(kv KV, prefix string) KV {
	return &scopedKV{kv: kv, prefix: prefix}
}

func (s *scopedKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.kv.Get(ctx, s.prefix+key)
}

func (s *scopedKV) Set(ctx context.Context, key string, value []byte) error {
	return s.kv.Set(ctx, s.prefix+key, value)
}

func (s *scopedKV) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, s.prefix+key)
}
