package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/pkg/db/dbtest"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(dbtest.OpenClient(t))
	require.NoError(t, err)
	return store
}

func TestStoreReplaceAndRead(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.ReplaceBrands(ctx, map[string]BrandCatalog{
		"Acme": {"Roadster": {"Base": {enums.TransmissionManual: 500_000, enums.TransmissionAMT: 550_000}}},
		"Void": {},
	}))

	brands, err := store.Brands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Void"}, brands)

	bc, found, err := store.BrandCatalog(ctx, "Acme")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, BrandCatalog{"Roadster": {"Base": {enums.TransmissionManual: 500_000, enums.TransmissionAMT: 550_000}}}, bc)

	bc, found, err = store.BrandCatalog(ctx, "Void")
	require.NoError(t, err)
	assert.True(t, found, "a brand row without entries still counts as defined")
	assert.Empty(t, bc)

	_, found, err = store.BrandCatalog(ctx, "acme")
	require.NoError(t, err)
	assert.False(t, found, "brand lookup is case-sensitive")
}

func TestStoreReplaceOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.ReplaceBrands(ctx, map[string]BrandCatalog{
		"Acme": {
			"Roadster": {"Base": {enums.TransmissionManual: 500_000}},
			"Retired":  {"Old": {enums.TransmissionManual: 100_000}},
		},
	}))
	require.NoError(t, store.ReplaceBrands(ctx, map[string]BrandCatalog{
		"Acme": {"Roadster": {"Base": {enums.TransmissionManual: 510_000}}},
	}))

	bc, _, err := store.BrandCatalog(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, BrandCatalog{"Roadster": {"Base": {enums.TransmissionManual: 510_000}}}, bc)
}

func TestNewStoreRequiresClient(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
