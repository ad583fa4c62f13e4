package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/repository"
	"github.com/zaqqye/navodaya_web/internal/utils"
)

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	cfg := &config.Config{AdminUsername: "admin", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(ctx, store, cfg))
	a, err := store.FindAdmin(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(a.Password, "s3cret"))

	// second run keeps the existing account
	require.NoError(t, SeedAdmin(ctx, store, &config.Config{AdminUsername: "admin", AdminPassword: "other"}))
	a, err = store.FindAdmin(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(a.Password, "s3cret"))
}

func TestSeedContentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	require.NoError(t, SeedContent(ctx, store))
	require.NoError(t, SeedContent(ctx, store))

	company, err := store.GetCompany(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PT Navodaya Multi Solusi", company.Name)

	services, err := store.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 3)
	assert.Equal(t, "1", services[0].ID)

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 6)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "mongo"})
	assert.Error(t, err)

	store, err := Open(&config.Config{DBDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &repository.MemoryStore{}, store)
}
