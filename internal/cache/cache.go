// Package cache provides the in-process read-through cache used by the
// service layer.
//
// Values are opaque byte slices. Keys are hashed with xxhash to pick a shard;
// every shard is an LRU bounded by the total size of its values and every
// entry expires after the cache TTL.
package cache

import (
	"time"

	"github.com/pbnjay/memory"
	"github.com/pkg/errors"
)

var (
	ErrIllegalCapacity = errors.New("illegal cache capacity")
	ErrInvalidSharding = errors.New("invalid sharding")
	ErrInvalidTTL      = errors.New("invalid cache ttl")
)

const maxDerivedBytes = 256 << 20

// Cache is implemented by [ShardedCache] and [NopCache].
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(keys ...string)
	// PurgeExpired drops expired entries and returns how many were dropped.
	PurgeExpired() int
	Len() int
}

// OnEvict is called with the key of an entry pushed out by a newer one.
type OnEvict func(key string)

// DefaultMaxBytes is 1% of system memory, capped at 256 MiB.
func DefaultMaxBytes() uint64 {
	total := memory.TotalMemory() / 100
	if total == 0 || total > maxDerivedBytes {
		return maxDerivedBytes
	}
	return total
}

// Options configure [New].
type Options struct {
	Shards   int
	MaxBytes uint64
	TTL      time.Duration
	OnEvict  OnEvict
}

// New returns a [ShardedCache] built from opts, or a [NopCache] when
// enabled is false.
func New(enabled bool, opts Options) (Cache, error) {
	if !enabled {
		return NopCache{}, nil
	}

	if opts.MaxBytes == 0 {
		opts.MaxBytes = DefaultMaxBytes()
	}

	c, err := NewShardedCache(opts.Shards, opts.MaxBytes, opts.TTL)
	if err != nil {
		return nil, errors.Wrap(err, "could not create cache")
	}
	c.OnEvict(opts.OnEvict)

	return c, nil
}
