package cache

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/speech-analytics/internal/logger"
)

// Fetch returns the value cached under key, or calls load and caches its
// JSON encoding. Nothing is cached when load fails. With a non-nil gens the
// loaded value is dropped if key was invalidated while load ran.
func Fetch[T any](ctx context.Context, c Cache, gens *Generations, key string, load func(ctx context.Context) (T, error)) (T, error) {
	log := logger.FromContext(ctx)

	var gen uint64
	if gens != nil {
		gen = gens.Current(key)
	}

	if raw, ok := c.Get(key); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			log.Debug().Str("cache_key", key).Msg("cache hit")
			return cached, nil
		}
		log.Warn().Str("cache_key", key).Msg("dropping undecodable cache entry")
		c.Delete(key)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("cache_key", key).Msg("value is not cacheable")
		return value, nil
	}

	if gens == nil {
		c.Set(key, raw)
		return value, nil
	}
	if !gens.setIfCurrent(c, key, gen, raw) {
		log.Debug().Str("cache_key", key).Msg("key changed while loading, not caching")
	}

	return value, nil
}
