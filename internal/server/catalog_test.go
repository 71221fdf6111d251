package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisp167/masar/internal/data"
)

func TestFavorites(t *testing.T) {
	ts := newTestServer(t)
	user := ts.authenticateUser(t, "user@example.com", "password")
	seller := ts.authenticateUser(t, "seller@example.com", "password")

	var toggled struct {
		Favorite bool `json:"favorite"`
	}
	ts.do(t, http.MethodPost, "/api/favorites/store/store1", user, nil, http.StatusOK, &toggled)
	assert.True(t, toggled.Favorite)
	ts.do(t, http.MethodPost, "/api/favorites/product/product2", user, nil, http.StatusOK, &toggled)
	assert.True(t, toggled.Favorite)

	var list struct {
		IDs []string `json:"ids"`
	}
	ts.do(t, http.MethodGet, "/api/favorites/store", user, nil, http.StatusOK, &list)
	assert.Equal(t, []string{"store1"}, list.IDs)

	ts.do(t, http.MethodGet, "/api/favorites/store", seller, nil, http.StatusOK, &list)
	assert.Empty(t, list.IDs, "favorites are per user")

	ts.do(t, http.MethodPost, "/api/favorites/store/store1", user, nil, http.StatusOK, &toggled)
	assert.False(t, toggled.Favorite)
	ts.do(t, http.MethodGet, "/api/favorites/store", user, nil, http.StatusOK, &list)
	assert.Empty(t, list.IDs)

	ts.do(t, http.MethodGet, "/api/favorites/service", user, nil, http.StatusNotFound, nil)
	ts.do(t, http.MethodPost, "/api/favorites/service/service1", user, nil, http.StatusNotFound, nil)
	ts.do(t, http.MethodPost, "/api/favorites/product/ghost", user, nil, http.StatusNotFound, nil)
	ts.do(t, http.MethodGet, "/api/favorites/store", "", nil, http.StatusUnauthorized, nil)
}

func TestCategories(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Categories        []string `json:"categories"`
		ProductCategories []string `json:"productCategories"`
	}
	ts.do(t, http.MethodGet, "/api/categories", "", nil, http.StatusOK, &body)
	assert.Contains(t, body.Categories, "Electronics")
	assert.Contains(t, body.Categories, "Gas Stations")
	assert.IsIncreasing(t, body.Categories)
	assert.Contains(t, body.ProductCategories, "Dairy")
	assert.NotContains(t, body.ProductCategories, "Gas Stations")
}

func TestMap(t *testing.T) {
	ts := newTestServer(t)

	var body struct {
		Markers []data.Marker `json:"markers"`
	}
	ts.do(t, http.MethodGet, "/api/map", "", nil, http.StatusOK, &body)
	assert.Len(t, body.Markers, 19)

	ts.do(t, http.MethodGet, "/api/map?tab=stores", "", nil, http.StatusOK, &body)
	require.Len(t, body.Markers, 3)
	assert.Equal(t, "store1", body.Markers[0].ID)
	assert.Equal(t, data.MarkerStore, body.Markers[0].Type)

	ts.do(t, http.MethodGet, "/api/map?tab=services&category=Medical%20Services", "", nil, http.StatusOK, &body)
	require.Len(t, body.Markers, 2)
	for _, m := range body.Markers {
		assert.Contains(t, []data.MarkerType{data.MarkerEmergency, data.MarkerMedical}, m.Type)
	}

	ts.do(t, http.MethodGet, "/api/map?tab=everything", "", nil, http.StatusBadRequest, nil)
}

func TestDashboards(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.authenticateUser(t, "admin@example.com", "password")
	seller := ts.authenticateUser(t, "seller@example.com", "password")

	var stats struct {
		Stats data.AdminStats `json:"stats"`
	}
	ts.do(t, http.MethodGet, "/api/dashboard/admin", admin, nil, http.StatusOK, &stats)
	assert.Equal(t, data.AdminStats{TotalUsers: 3, TotalStores: 3, TotalProducts: 9, TotalServices: 16}, stats.Stats)

	var overview struct {
		Overview data.SellerOverview `json:"overview"`
	}
	ts.do(t, http.MethodGet, "/api/dashboard/seller", seller, nil, http.StatusOK, &overview)
	assert.Equal(t, 3, overview.Overview.TotalStores)
	assert.Equal(t, 9, overview.Overview.TotalProducts)
	assert.InDelta(t, 2514.91, overview.Overview.InventoryValue, 0.001)
}
