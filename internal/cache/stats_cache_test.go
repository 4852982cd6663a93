package cache

import (
	"context"
	"testing"
	"time"

	"group-reviews/internal/domain"
	"group-reviews/internal/rating"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*StatsCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewStatsCache(client, ttl), mr
}

func TestStatsCache_MissThenHit(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t, time.Minute)

	stats, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, stats)

	distribution, err := rating.FromCounts(map[int]int{5: 3, 4: 1, 3: 1})
	require.NoError(t, err)

	created := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	want := []*domain.GroupStats{{
		ID:                 1,
		Name:               "IT Специалисты",
		Platform:           domain.PlatformTelegram,
		MembersCount:       "81K",
		AvgRating:          4.4,
		ReviewsCount:       5,
		RatingDistribution: distribution,
		CreatedAt:          created,
	}}
	require.NoError(t, c.Set(ctx, want))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "IT Специалисты", got[0].Name)
	assert.Equal(t, 3, got[0].RatingDistribution.Count(5))
	assert.Equal(t, 5, got[0].RatingDistribution.Total())
	assert.True(t, created.Equal(got[0].CreatedAt))
}

func TestStatsCache_Expires(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, 30*time.Second)

	require.NoError(t, c.Set(ctx, []*domain.GroupStats{}))
	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(31 * time.Second)

	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStatsCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.Set(ctx, []*domain.GroupStats{{ID: 1}}))
	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(statsKey))

	// повторный сброс на пустом ключе не ошибка
	require.NoError(t, c.Invalidate(ctx))
}

func TestStatsCache_CorruptedValue(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set(statsKey, "{not json"))

	_, ok, err := c.Get(ctx)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStatsCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, _, err := c.Get(ctx)
	assert.Error(t, err)
	assert.Error(t, c.Ping(ctx))
}

func TestNewStatsCacheWithURL(t *testing.T) {
	_, err := NewStatsCacheWithURL("://bad", time.Minute)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	c, err := NewStatsCacheWithURL("redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	assert.NoError(t, c.Ping(context.Background()))
}
