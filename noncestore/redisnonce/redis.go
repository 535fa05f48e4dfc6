// Package redisnonce provides a Redis-backed nonce store so the expected
// nonce per API key is shared across processes. The validator side is the
// read-only Lookup; Put and Advance belong to the store owner.
package redisnonce

import (
	"context"
	"fmt"
	"strconv"

	"github.com/joeshaw/envdecode"
	"github.com/redis/go-redis/v9"
)

// Config for the Redis-backed nonce store. Defaults can be loaded via
// envdecode; a pre-built Client takes precedence over RedisAddr.
type Config struct {
	// Client is an optional pre-configured Redis client.
	Client *redis.Client

	// RedisAddr like "localhost:6379". ENV: REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR,default=localhost:6379"`

	// KeyPrefix for all nonce keys. ENV: NONCE_KEY_PREFIX
	KeyPrefix string `env:"NONCE_KEY_PREFIX,default=authcore:nonce:"`
}

// Store reads and advances per-key nonces in Redis.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

// New creates a Redis-backed nonce store.
func New(cfg Config) (*Store, error) {
	cl := cfg.Client
	if cl == nil {
		addr := cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		cl = redis.NewClient(&redis.Options{Addr: addr})
		if err := cl.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "authcore:nonce:"
	}
	return &Store{client: cl, keyPrefix: prefix}, nil
}

// NewFromEnv builds a Store using envdecode to populate Config.
func NewFromEnv() (*Store, error) {
	var cfg Config
	// Defaults are provided via struct tags.
	_ = envdecode.Decode(&cfg)
	return New(cfg)
}

// Lookup implements noncestore.Lookup. An unknown key, a value that is not
// an unsigned integer, or a backend failure all resolve to not-ok: the
// validator must surface an invalid credential, never crash on the
// collaborator's behalf.
func (s *Store) Lookup(ctx context.Context, apiKey string) (uint64, bool) {
	val, err := s.client.Get(ctx, s.key(apiKey)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Put registers an API key with the nonce its next request must present.
func (s *Store) Put(ctx context.Context, apiKey string, nonce uint64) error {
	if err := s.client.Set(ctx, s.key(apiKey), strconv.FormatUint(nonce, 10), 0).Err(); err != nil {
		return fmt.Errorf("put nonce for %q: %w", apiKey, err)
	}
	return nil
}

// Advance bumps the expected nonce after a successful validation and
// returns the new value. Advancing an unknown key is an error; keys are
// provisioned with Put.
func (s *Store) Advance(ctx context.Context, apiKey string) (uint64, error) {
	k := s.key(apiKey)
	exists, err := s.client.Exists(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("advance nonce for %q: %w", apiKey, err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("advance nonce for %q: key not provisioned", apiKey)
	}
	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("advance nonce for %q: %w", apiKey, err)
	}
	return uint64(n), nil
}

// Delete revokes an API key.
func (s *Store) Delete(ctx context.Context, apiKey string) error {
	if err := s.client.Del(ctx, s.key(apiKey)).Err(); err != nil {
		return fmt.Errorf("delete nonce for %q: %w", apiKey, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(apiKey string) string {
	return s.keyPrefix + apiKey
}
