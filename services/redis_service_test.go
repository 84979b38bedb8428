package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

// Cache miss phải trả về redis.Nil, không được trả về nil với target giữ
// nguyên giá trị zero: caller coi err == nil là cache hit và trả về ngay,
// nuốt miss sẽ làm endpoint luôn trả về kết quả rỗng khi Redis hoạt động.
func TestGetFromRedisMissReturnsRedisNil(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	var dates []string
	err := GetFromRedis(ctx, client, "attendance:dates:1", &dates)

	assert.ErrorIs(t, err, redis.Nil)
	assert.Empty(t, dates)
}

func TestGetFromRedisHitUnmarshalsValue(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	stored := []string{"2024-01-14", "2024-01-07"}
	err := SetToRedis(ctx, client, "attendance:dates:1", stored, 10*time.Minute)
	assert.NoError(t, err)

	var dates []string
	err = GetFromRedis(ctx, client, "attendance:dates:1", &dates)

	assert.NoError(t, err)
	assert.Equal(t, stored, dates)
}

// Danh sách rỗng được cache vẫn là cache hit: phân biệt được với miss
func TestGetFromRedisDistinguishesCachedEmptyFromMiss(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	err := SetToRedis(ctx, client, "attendance:dates:2", []string{}, 10*time.Minute)
	assert.NoError(t, err)

	var dates []string
	err = GetFromRedis(ctx, client, "attendance:dates:2", &dates)
	assert.NoError(t, err)

	var missing []string
	err = GetFromRedis(ctx, client, "attendance:dates:3", &missing)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDeleteFromRedisRemovesKey(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	assert.NoError(t, SetToRedis(ctx, client, "attendance:dates:1", []string{"2024-01-07"}, 10*time.Minute))
	assert.NoError(t, DeleteFromRedis(ctx, client, "attendance:dates:1"))

	var dates []string
	err := GetFromRedis(ctx, client, "attendance:dates:1", &dates)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDeleteByPatternRemovesMatchingKeysOnly(t *testing.T) {
	_, client := newTestRedis(t)
	ctx := context.Background()

	assert.NoError(t, SetToRedis(ctx, client, "reports:attendance:all:2024:month", 1, 10*time.Minute))
	assert.NoError(t, SetToRedis(ctx, client, "reports:attendance:1:2024:quarter", 2, 10*time.Minute))
	assert.NoError(t, SetToRedis(ctx, client, "attendance:dates:1", 3, 10*time.Minute))

	assert.NoError(t, DeleteByPattern(ctx, client, "reports:attendance:*"))

	var v int
	assert.ErrorIs(t, GetFromRedis(ctx, client, "reports:attendance:all:2024:month", &v), redis.Nil)
	assert.ErrorIs(t, GetFromRedis(ctx, client, "reports:attendance:1:2024:quarter", &v), redis.Nil)
	assert.NoError(t, GetFromRedis(ctx, client, "attendance:dates:1", &v))
}
