package repositories

import (
	"context"
	"testing"
	"time"

	"frushh/models"
	"frushh/repositories/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func TestNewCachedCatalog_NoRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogRepository(ctrl)

	assert.Same(t, next, NewCachedCatalog(next, nil, time.Minute, logr.Discard()))
}

func TestCachedCatalog_GetProduct(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogRepository(ctrl)
	product := &models.Product{ID: 1, Name: "Chocolate Peanut Butter", Price250ml: 79, Price350ml: 99, IsActive: true}
	next.EXPECT().GetProduct(gomock.Any(), 1).Return(product, nil).Times(1)

	catalog := NewCachedCatalog(next, client, time.Minute, testr.New(t))
	ctx := context.Background()

	got, err := catalog.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 79, got.Price250ml)
	assert.True(t, mr.Exists("catalog:product:1"))

	got, err = catalog.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Peanut Butter", got.Name)
}

func TestCachedCatalog_Expiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogRepository(ctrl)
	next.EXPECT().GetProduct(gomock.Any(), 1).Return(&models.Product{ID: 1}, nil).Times(2)

	catalog := NewCachedCatalog(next, client, time.Minute, testr.New(t))
	_, err := catalog.GetProduct(context.Background(), 1)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = catalog.GetProduct(context.Background(), 1)
	require.NoError(t, err)
}

func TestCachedCatalog_GetAddonsFetchesOnlyMissing(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogRepository(ctrl)
	gomock.InOrder(
		next.EXPECT().GetAddons(gomock.Any(), []int{1}).
			Return([]models.CatalogAddon{{ID: 1, Name: "Chia Seeds", Price: 10, IsActive: true}}, nil),
		next.EXPECT().GetAddons(gomock.Any(), []int{2}).
			Return([]models.CatalogAddon{{ID: 2, Name: "Extra Whey Scoop", Price: 30, IsActive: true}}, nil),
	)

	catalog := NewCachedCatalog(next, client, time.Minute, testr.New(t))
	ctx := context.Background()

	_, err := catalog.GetAddons(ctx, []int{1})
	require.NoError(t, err)

	addons, err := catalog.GetAddons(ctx, []int{1, 2})
	require.NoError(t, err)
	require.Len(t, addons, 2)
	assert.Equal(t, 10, addons[0].Price)
	assert.Equal(t, 30, addons[1].Price)
}

func TestCachedCatalog_RedisDownFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	mr.Close()

	ctrl := gomock.NewController(t)
	next := mocks.NewMockCatalogRepository(ctrl)
	next.EXPECT().GetProduct(gomock.Any(), 1).Return(&models.Product{ID: 1, Price250ml: 79}, nil)

	var logged []string
	logger := funcr.New(func(prefix, args string) { logged = append(logged, prefix+" "+args) }, funcr.Options{})

	got, err := NewCachedCatalog(next, client, time.Minute, logger).GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 79, got.Price250ml)

	require.Len(t, logged, 2)
	assert.Contains(t, logged[0], "cache read failed")
	assert.Contains(t, logged[0], "catalog:product:1")
	assert.Contains(t, logged[1], "cache write failed")
}
