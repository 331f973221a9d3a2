// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/sec"
)

// # Verification Tokens

// RedisVerificationTokenStore implements [VerificationTokenStore] using Redis.
//
// Each token is its own key, so expiry is enforced by Redis itself and a
// lookup can never return a record older than the TTL.
type RedisVerificationTokenStore struct {
	client redis.Cmdable
	ttl    time.Duration
	now    func() time.Time
}

// NewVerificationTokenStore creates a new Redis-backed [VerificationTokenStore].
func NewVerificationTokenStore(client redis.Cmdable, ttl time.Duration, now func() time.Time) *RedisVerificationTokenStore {
	if now == nil {
		now = time.Now
	}
	return &RedisVerificationTokenStore{client: client, ttl: ttl, now: now}
}

func verificationKey(accountID, token string) string {
	return fmt.Sprintf("%s%s:%s", constants.RedisPrefixVerifyToken, accountID, token)
}

/*
Create generates a token and stores it with the configured TTL.

Description: The value stored is the creation time; only the key matters.
SET NX refuses to overwrite, which turns an improbable collision into an error.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - string: Plaintext token
  - error: Entropy or connectivity errors
*/
func (repository *RedisVerificationTokenStore) Create(context context.Context, accountID string) (string, error) {
	token, err := sec.GenerateSecureToken(constants.VerificationTokenBytes)
	if err != nil {
		return "", fmt.Errorf("redis_verify_token_generate_failed: %w", err)
	}

	created, err := repository.client.SetNX(context, verificationKey(accountID, token), repository.now().Unix(), repository.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("redis_verify_token_set_failed: %w", err)
	}
	if !created {
		return "", errors.New("redis_verify_token_set_failed: key collision")
	}

	return token, nil
}

/*
Exists reports whether the token is still live without consuming it.

Parameters:
  - context: context.Context
  - accountID: string
  - token: string

Returns:
  - bool: Whether the token exists
  - error: Connectivity errors
*/
func (repository *RedisVerificationTokenStore) Exists(context context.Context, accountID, token string) (bool, error) {
	token, ok := normalizeToken(token)
	if !ok || accountID == "" {
		return false, nil
	}

	count, err := repository.client.Exists(context, verificationKey(accountID, token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_verify_token_exists_failed: %w", err)
	}
	return count == 1, nil
}

/*
Consume deletes the token and reports whether it existed.

Description: GETDEL is a single atomic command, so concurrent consumers of
the same token cannot both observe it.

Parameters:
  - context: context.Context
  - accountID: string
  - token: string

Returns:
  - bool: true exactly once per created token
  - error: Connectivity errors
*/
func (repository *RedisVerificationTokenStore) Consume(context context.Context, accountID, token string) (bool, error) {
	token, ok := normalizeToken(token)
	if !ok || accountID == "" {
		return false, nil
	}

	_, err := repository.client.GetDel(context, verificationKey(accountID, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_verify_token_consume_failed: %w", err)
	}

	return true, nil
}

// normalizeToken lowercases the value to match the issued encoding.
// Only hex reaches Redis; anything else cannot be a token we issued.
func normalizeToken(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	value = strings.ToLower(value)
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return "", false
		}
	}
	return value, true
}

// # Session Versions

// RedisSessionVersionStore implements [SessionVersionStore] using Redis counters.
//
// Counters never expire. A reset to zero would let a token minted under an
// older counter outlive a later revocation.
type RedisSessionVersionStore struct {
	client redis.Cmdable
}

// NewSessionVersionStore creates a new Redis-backed [SessionVersionStore].
func NewSessionVersionStore(client redis.Cmdable) *RedisSessionVersionStore {
	return &RedisSessionVersionStore{client: client}
}

func sessionVersionKey(accountID string) string {
	return constants.RedisPrefixSessionVersion + accountID
}

/*
Current returns the stored version, or 0 if the account was never revoked.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - int64: Current version
  - error: Connectivity or decoding errors
*/
func (repository *RedisSessionVersionStore) Current(context context.Context, accountID string) (int64, error) {
	raw, err := repository.client.Get(context, sessionVersionKey(accountID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_session_version_get_failed: %w", err)
	}

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis_session_version_decode_failed: %w", err)
	}
	return version, nil
}

/*
Revoke increments the version atomically.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - int64: New version
  - error: Connectivity errors
*/
func (repository *RedisSessionVersionStore) Revoke(context context.Context, accountID string) (int64, error) {
	version, err := repository.client.Incr(context, sessionVersionKey(accountID)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_session_version_revoke_failed: %w", err)
	}
	return version, nil
}
