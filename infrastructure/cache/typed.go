package cache

import (
	"context"
	"fmt"
	"strings"

	"channel-gateway/domain/repository"
	"channel-gateway/infrastructure/logger"
	"channel-gateway/infrastructure/metrics"

	"github.com/goccy/go-json"
)

// Key categories
const (
	CategoryResolve = "resolve"
	CategoryStats   = "stats"
	CategoryUploads = "uploads"
	CategoryLatest  = "latest"
	CategoryPopular = "popular"
)

// Key joins a category and its identifying parameters, e.g. "latest:UC123:6".
func Key(category string, parts ...any) string {
	var b strings.Builder
	b.WriteString(category)
	for _, p := range parts {
		b.WriteByte(':')
		fmt.Fprint(&b, p)
	}
	return b.String()
}

func category(key string) string {
	c, _, _ := strings.Cut(key, ":")
	return c
}

// Load decodes the value stored under key into a fresh T.
// Undecodable entries count as misses.
func Load[T any](ctx context.Context, c repository.ICache, key string) (T, bool) {
	var out T
	raw, ok := c.Get(ctx, key)
	if ok {
		err := json.Unmarshal(raw, &out)
		if err == nil {
			metrics.CacheLookups.WithLabelValues(category(key), metrics.ResultHit).Inc()
			return out, true
		}
		logger.GetLogger().WithField("error", err).WithField("key", key).Warn("Discarding undecodable cache entry")
	}
	metrics.CacheLookups.WithLabelValues(category(key), metrics.ResultMiss).Inc()
	var zero T
	return zero, false
}

// Store encodes v and writes it under key.
func Store[T any](ctx context.Context, c repository.ICache, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Failed encoding cache entry")
		return
	}
	c.Set(ctx, key, raw)
}

// Encode returns the cache representation of v.
func Encode[T any](v T) ([]byte, error) {
	return json.Marshal(v)
}

// Decode returns a fresh T decoded from raw.
func Decode[T any](raw []byte) (T, error) {
	var out T
	err := json.Unmarshal(raw, &out)
	return out, err
}
