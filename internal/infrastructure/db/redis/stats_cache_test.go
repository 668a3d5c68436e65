package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/users-api/internal/core/ports"
)

func sampleStats() *ports.UserStats {
	return &ports.UserStats{
		ByJobTitle: map[string]int64{"Engineer": 2},
		ByRole:     map[string]int64{"USER": 2},
		ByActive:   map[string]int64{"active": 2},
	}
}

func TestStatsCache_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewStatsCache(client, time.Minute)

	mock.ExpectGet("users:stats").RedisNil()

	stats, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stats, "a miss must return (nil, nil)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCache_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewStatsCache(client, time.Minute)

	raw, err := json.Marshal(sampleStats())
	require.NoError(t, err)
	mock.ExpectGet("users:stats").SetVal(string(raw))

	stats, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(2), stats.ByJobTitle["Engineer"])
	assert.Equal(t, int64(2), stats.ByActive["active"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCache_GetCorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewStatsCache(client, time.Minute)

	mock.ExpectGet("users:stats").SetVal("{not json")

	_, err := cache.Get(context.Background())
	assert.Error(t, err)
}

func TestStatsCache_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewStatsCache(client, 30*time.Second)

	stats := sampleStats()
	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	mock.ExpectSet("users:stats", raw, 30*time.Second).SetVal("OK")

	require.NoError(t, cache.Set(context.Background(), stats))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCache_SetDefaultsTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewStatsCache(client, 0)

	stats := sampleStats()
	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	mock.ExpectSet("users:stats", raw, time.Minute).SetVal("OK")

	require.NoError(t, cache.Set(context.Background(), stats))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsCache_Invalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewStatsCache(client, time.Minute)

	mock.ExpectDel("users:stats").SetVal(1)

	require.NoError(t, cache.Invalidate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
