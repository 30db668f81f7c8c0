package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 30 * 24 * time.Hour

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared across instances. Each token maps to its user id, and a per-user set
// tracks live tokens for RevokeUser.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: defaultTTL}
}

func tokenKey(token string) string {
	return "session:" + token
}

func userKey(userID uint) string {
	return fmt.Sprintf("session_user:%d", userID)
}

func (s *RedisStore) Create(ctx context.Context, userID uint) (string, error) {
	token := newToken()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(token), strconv.FormatUint(uint64(userID), 10), s.ttl)
	pipe.SAdd(ctx, userKey(userID), token)
	pipe.Expire(ctx, userKey(userID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (uint, error) {
	val, err := s.client.Get(ctx, tokenKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(userID), nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	userID, err := s.Resolve(ctx, token)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, tokenKey(token))
	pipe.SRem(ctx, userKey(userID), token)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) RevokeUser(ctx context.Context, userID uint) error {
	tokens, err := s.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, tokenKey(token))
	}
	pipe.Del(ctx, userKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}
