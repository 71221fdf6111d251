package data

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestModels(t *testing.T) Models {
	t.Helper()
	return NewModels(NewMemoryKV())
}

func sampleStore() Store {
	return Store{
		Name:        "Corner Bakery",
		Description: "Bread and pastries baked every morning.",
		Logo:        "/bakery-logo.png",
		CoverImage:  "/bakery.png",
		OwnerID:     "seller1",
		Categories:  []string{"Bakery", "Groceries"},
		Location:    Location{Address: "1 Rainbow Street, Amman, Jordan", Lat: 31.95, Lng: 35.91},
		ContactInfo: ContactInfo{Phone: "+962 7 0000 0000", Email: "hello@bakery.jo"},
		OpeningHours: OpeningHours{
			Monday: "7:00 AM - 3:00 PM", Tuesday: "7:00 AM - 3:00 PM", Wednesday: "7:00 AM - 3:00 PM",
			Thursday: "7:00 AM - 3:00 PM", Friday: "Closed", Saturday: "8:00 AM - 2:00 PM", Sunday: "8:00 AM - 2:00 PM",
		},
		Rating: 4.2,
	}
}

func TestAddStoreThenGetByID(t *testing.T) {
	ctx := context.Background()
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			m := NewModels(kv)
			input := sampleStore()

			created, err := m.Stores.AddStore(ctx, input)
			require.NoError(t, err)
			assert.Regexp(t, `^store\d+$`, created.ID)
			assert.False(t, created.CreatedAt.IsZero(), "creation time should be set")

			got, err := m.Stores.GetStoreByID(ctx, created.ID)
			require.NoError(t, err)
			require.NotNil(t, got)

			want := input
			want.ID = created.ID
			want.CreatedAt = created.CreatedAt
			want.Reviews = []Review{}
			if diff := cmp.Diff(want, *got); diff != "" {
				t.Errorf("stored store mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddStoreIgnoresCallerID(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)

	input := sampleStore()
	input.ID = "chosen-by-client"
	a, err := m.Stores.AddStore(ctx, input)
	require.NoError(t, err)
	b, err := m.Stores.AddStore(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, "chosen-by-client", a.ID)
	assert.NotEqual(t, a.ID, b.ID, "stores created back to back need distinct ids")
}

func TestGetStoreByIDMissing(t *testing.T) {
	m := newTestModels(t)
	got, err := m.Stores.GetStoreByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetStoresEmptyStorage(t *testing.T) {
	m := newTestModels(t)
	stores, err := m.Stores.GetStores(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, stores)
	assert.Empty(t, stores)
}

func TestGetStoresMalformedJSON(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, StoresKey, []byte("{not json")))

	_, err := NewModels(kv).Stores.GetStores(ctx)
	assert.Error(t, err, "malformed stored data should surface as an error")
}

func TestUpdateStoreMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)
	created, err := m.Stores.AddStore(ctx, sampleStore())
	require.NoError(t, err)

	name := "Corner Bakery & Cafe"
	updated, err := m.Stores.UpdateStore(ctx, created.ID, StorePatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)

	want := *created
	want.Name = name
	assert.Equal(t, want, *updated)

	stored, err := m.Stores.GetStoreByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, want, *stored, "update should be persisted")
}

func TestUpdateStoreMissing(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)
	_, err := m.Stores.AddStore(ctx, sampleStore())
	require.NoError(t, err)

	name := "x"
	updated, err := m.Stores.UpdateStore(ctx, "missing", StorePatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteStore(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)
	a, err := m.Stores.AddStore(ctx, sampleStore())
	require.NoError(t, err)
	_, err = m.Stores.AddStore(ctx, sampleStore())
	require.NoError(t, err)

	ok, err := m.Stores.DeleteStore(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Stores.DeleteStore(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete of the same id should report false")

	stores, err := m.Stores.GetStores(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 1)
}

func TestGetStoresByOwner(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)

	mine := sampleStore()
	theirs := sampleStore()
	theirs.OwnerID = "seller2"
	_, err := m.Stores.AddStore(ctx, mine)
	require.NoError(t, err)
	_, err = m.Stores.AddStore(ctx, theirs)
	require.NoError(t, err)

	owned, err := m.Stores.GetStoresByOwner(ctx, "seller2")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "seller2", owned[0].OwnerID)
}

func TestAddStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	const n = 25
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			m := NewModels(kv)

			var g errgroup.Group
			for i := 0; i < n; i++ {
				g.Go(func() error {
					s := sampleStore()
					s.Name = fmt.Sprintf("Store %d", i)
					_, err := m.Stores.AddStore(ctx, s)
					return err
				})
			}
			require.NoError(t, g.Wait())

			stores, err := m.Stores.GetStores(ctx)
			require.NoError(t, err)
			require.Len(t, stores, n, "no concurrent add may be lost")

			ids := make(map[string]struct{}, n)
			for _, s := range stores {
				ids[s.ID] = struct{}{}
			}
			assert.Len(t, ids, n, "ids must be distinct")
		})
	}
}
