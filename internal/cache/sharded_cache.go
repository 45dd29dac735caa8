package cache

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ShardedCache is a byte-bounded LRU split into independently locked
// shards. It is safe for concurrent use.
type ShardedCache struct {
	maxBytes uint64
	capacity uint64
	ttl      time.Duration
	shards   []*lruShard
	now      func() time.Time
}

func NewShardedCache(shards int, maxTotalBytes uint64, ttl time.Duration) (*ShardedCache, error) {
	if shards < 1 {
		return nil, ErrInvalidSharding
	}

	if maxTotalBytes < uint64(shards) {
		return nil, ErrIllegalCapacity
	}

	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	c := ShardedCache{
		maxBytes: maxTotalBytes,
		capacity: uint64(shards),
		ttl:      ttl,
		shards:   make([]*lruShard, shards),
		now:      time.Now,
	}

	shardMaxBytes := maxTotalBytes / c.capacity
	for i := range c.shards {
		c.shards[i] = newLruShard(shardMaxBytes)
	}

	return &c, nil
}

// OnEvict must be set before the cache is shared between goroutines.
func (c *ShardedCache) OnEvict(fn OnEvict) {
	for i := range c.shards {
		c.shards[i].onEvict = fn
	}
}

func (c *ShardedCache) Get(key string) ([]byte, bool) {
	return c.getShard(key).get(key, c.now())
}

func (c *ShardedCache) Set(key string, value []byte) {
	c.getShard(key).add(key, value, c.now().Add(c.ttl))
}

func (c *ShardedCache) Delete(keys ...string) {
	for _, key := range keys {
		c.getShard(key).remove(key)
	}
}

func (c *ShardedCache) PurgeExpired() int {
	now := c.now()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		purged int
	)

	wg.Add(len(c.shards))
	for i := range c.shards {
		go func(shard *lruShard) {
			defer wg.Done()
			n := shard.purgeExpired(now)

			mu.Lock()
			purged += n
			mu.Unlock()
		}(c.shards[i])
	}

	wg.Wait()
	return purged
}

func (c *ShardedCache) Len() int {
	var n int
	for i := range c.shards {
		n += c.shards[i].len()
	}
	return n
}

// Bytes is the total size of stored values.
func (c *ShardedCache) Bytes() uint64 {
	var n uint64
	for i := range c.shards {
		n += c.shards[i].bytes()
	}
	return n
}

func (c *ShardedCache) getShard(key string) *lruShard {
	return c.shards[xxhash.Sum64String(key)%c.capacity]
}
