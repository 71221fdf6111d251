package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	m := newTestModels(t)

	created, err := m.Services.AddService(ctx, Service{
		Name:        "Night Pharmacy",
		Category:    "Medical Services",
		IsEmergency: true,
		IsOpen:      true,
		FuelTypes:   nil,
		Specialties: []string{"Prescriptions"},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^service\d+$`, created.ID)

	closed := false
	updated, err := m.Services.UpdateService(ctx, created.ID, ServicePatch{IsOpen: &closed})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsOpen)
	assert.True(t, updated.IsEmergency)
	assert.Equal(t, []string{"Prescriptions"}, updated.Specialties)

	got, err := m.Services.GetServiceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	ok, err := m.Services.DeleteService(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Services.DeleteService(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
