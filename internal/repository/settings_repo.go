package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Settings keys. The original app kept these in browser localStorage; here
// they live in Redis so every instance sees the same configuration.
const (
	SettingProxyURL    = "settings:proxy_url"
	SettingSheetURL    = "settings:sheet_url"
	SettingProxyAPIKey = "settings:proxy_api_key"
)

// SettingsStore is the local key-value store holding the configured webhook
// endpoints and API key. Values are read fresh on every submission — there
// is no in-process cache to invalidate.
type SettingsStore interface {
	Get(ctx context.Context, key string) string
	Set(ctx context.Context, key, value string) error
}

type redisSettings struct{ rdb *redis.Client }

func NewSettingsStore(rdb *redis.Client) SettingsStore { return &redisSettings{rdb: rdb} }

// Get returns the stored value, or "" when the key is unset or Redis is
// unreachable. An unreadable setting behaves exactly like an unconfigured
// one: submission degrades to "not configured" instead of failing loudly.
func (s *redisSettings) Get(ctx context.Context, key string) string {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Error().Err(err).Str("key", key).Msg("settings read failed")
		}
		return ""
	}
	return val
}

// Set stores a value; an empty value deletes the key.
func (s *redisSettings) Set(ctx context.Context, key, value string) error {
	if value == "" {
		return s.rdb.Del(ctx, key).Err()
	}
	return s.rdb.Set(ctx, key, value, 0).Err()
}
