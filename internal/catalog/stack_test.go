package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/groupdrive-backend/pkg/config"
	"github.com/angelmondragon/groupdrive-backend/pkg/db/dbtest"
	"github.com/angelmondragon/groupdrive-backend/pkg/enums"
	redisclient "github.com/angelmondragon/groupdrive-backend/pkg/redis"
)

func stackConfig() config.CatalogConfig {
	return config.CatalogConfig{
		CacheTTL:            time.Minute,
		BreakerTimeout:      time.Second,
		BreakerFailureRatio: 0.5,
		BreakerMinRequests:  5,
	}
}

func TestNewStackWithoutCache(t *testing.T) {
	ctx := context.Background()
	stack, err := NewStack(StackParams{DB: dbtest.OpenClient(t), Config: stackConfig(), UseCache: true})
	require.NoError(t, err)
	assert.Nil(t, stack.Cache)

	price, ok := stack.Resolver.Price(ctx, "Tata", "Nexon", "XZ+", enums.TransmissionManual)
	require.True(t, ok)
	assert.Equal(t, int64(1050000), price)

	res, err := stack.Seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Brands)
}

func TestNewStackWithCacheInvalidatesOnSeed(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redisclient.NewFromRaw(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = rdb.Close() })

	stack, err := NewStack(StackParams{DB: dbtest.OpenClient(t), Redis: rdb, Config: stackConfig(), UseCache: true})
	require.NoError(t, err)
	require.NotNil(t, stack.Cache)

	// an empty store is cached as "not defined" and the static table answers
	bc := stack.Resolver.GetBrandCatalog(ctx, "Kia")
	assert.NotEmpty(t, bc)
	assert.True(t, mr.Exists("gd:catalog:brand:Kia"))

	_, err = stack.Seeder.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, mr.Exists("gd:catalog:brand:Kia"))

	assert.Equal(t, bc, stack.Resolver.GetBrandCatalog(ctx, "Kia"))
}

func TestNewStackRequiresDB(t *testing.T) {
	_, err := NewStack(StackParams{})
	require.Error(t, err)
}
