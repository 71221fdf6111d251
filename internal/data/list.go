package data

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// list is a JSON array of records stored under a single key. Every mutation
// reads the whole array, changes it and writes it back; the mutex only
// serializes writers inside this process.
type list[T any] struct {
	kv  KV
	key string
	mu  *sync.Mutex
}

func newList[T any](kv KV, key string) list[T] {
	return list[T]{kv: kv, key: key, mu: &sync.Mutex{}}
}

func (l list[T]) all(ctx context.Context) ([]T, error) {
	raw, ok, err := l.kv.Get(ctx, l.key)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if !ok {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", l.key)
	}
	return items, nil
}

func (l list[T]) write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "encode %s", l.key)
	}
	return l.kv.Set(ctx, l.key, raw)
}

// modify runs fn over the current array and stores the result unless fn
// reports that nothing changed.
func (l list[T]) modify(ctx context.Context, fn func(items []T) ([]T, bool)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.all(ctx)
	if err != nil {
		return err
	}
	items, changed := fn(items)
	if !changed {
		return nil
	}
	return l.write(ctx, items)
}

func (l list[T]) exists(ctx context.Context) (bool, error) {
	_, ok, err := l.kv.Get(ctx, l.key)
	return ok, err
}

var lastID atomic.Int64

// newID returns prefix followed by the current unix milliseconds. Ids handed
// out by one process are strictly increasing, so records created within the
// same millisecond still get distinct ids.
func newID(prefix string) string {
	for {
		last := lastID.Load()
		ms := time.Now().UnixMilli()
		if ms <= last {
			ms = last + 1
		}
		if lastID.CompareAndSwap(last, ms) {
			return prefix + strconv.FormatInt(ms, 10)
		}
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
