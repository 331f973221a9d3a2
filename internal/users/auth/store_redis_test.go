// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/hirelane/internal/platform/constants"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestRedisVerificationTokenStore(t *testing.T) {
	server, client := newRedis(t)
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	store := NewVerificationTokenStore(client, time.Hour, func() time.Time { return created })

	token, err := store.Create(ctx, "acc-1")
	require.NoError(t, err)
	assert.Len(t, token, constants.VerificationTokenBytes*2)

	key := constants.RedisPrefixVerifyToken + "acc-1:" + token
	require.True(t, server.Exists(key))
	value, err := server.Get(key)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(created.Unix(), 10), value)
	assert.Equal(t, time.Hour, server.TTL(key))

	live, err := store.Exists(ctx, "acc-1", token)
	require.NoError(t, err)
	assert.True(t, live)

	live, err = store.Exists(ctx, "acc-2", token)
	require.NoError(t, err)
	assert.False(t, live)

	// Wrong account or wrong value never consumes.
	ok, err := store.Consume(ctx, "acc-2", token)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Consume(ctx, "acc-1", "deadbeef")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Consume(ctx, "acc-1", token)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "acc-1", token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisVerificationTokenStore_UppercaseLink(t *testing.T) {
	_, client := newRedis(t)
	ctx := context.Background()
	store := NewVerificationTokenStore(client, time.Hour, nil)

	token, err := store.Create(ctx, "acc-1")
	require.NoError(t, err)
	upper := strings.ToUpper(token)

	live, err := store.Exists(ctx, "acc-1", upper)
	require.NoError(t, err)
	assert.True(t, live)

	ok, err := store.Consume(ctx, "acc-1", upper)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisVerificationTokenStore_Expiry(t *testing.T) {
	server, client := newRedis(t)
	ctx := context.Background()

	store := NewVerificationTokenStore(client, time.Hour, nil)

	token, err := store.Create(ctx, "acc-1")
	require.NoError(t, err)

	server.FastForward(time.Hour)

	ok, err := store.Consume(ctx, "acc-1", token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisVerificationTokenStore_RejectsNonHex(t *testing.T) {
	_, client := newRedis(t)
	store := NewVerificationTokenStore(client, time.Hour, nil)

	for _, token := range []string{"", "*", "ab:cd", "zz"} {
		ok, err := store.Consume(context.Background(), "acc-1", token)
		require.NoError(t, err)
		assert.False(t, ok, token)

		live, err := store.Exists(context.Background(), "acc-1", token)
		require.NoError(t, err)
		assert.False(t, live, token)
	}
}

func TestRedisVerificationTokenStore_ConnectionError(t *testing.T) {
	server, client := newRedis(t)
	store := NewVerificationTokenStore(client, time.Hour, nil)
	server.Close()

	_, err := store.Create(context.Background(), "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis_verify_token_set_failed")
}

func TestRedisSessionVersionStore(t *testing.T) {
	server, client := newRedis(t)
	ctx := context.Background()
	store := NewSessionVersionStore(client)

	version, err := store.Current(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	version, err = store.Revoke(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	version, err = store.Revoke(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	version, err = store.Current(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	// Counters must not expire.
	assert.Equal(t, time.Duration(0), server.TTL(constants.RedisPrefixSessionVersion+"acc-1"))

	version, err = store.Current(ctx, "acc-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestRedisSessionVersionStore_CorruptValue(t *testing.T) {
	server, client := newRedis(t)
	require.NoError(t, server.Set(constants.RedisPrefixSessionVersion+"acc-1", "not-a-number"))

	_, err := NewSessionVersionStore(client).Current(context.Background(), "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis_session_version_decode_failed")
}
