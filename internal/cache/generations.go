package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const generationStripes = 256

type generationStripe struct {
	mu  sync.Mutex
	gen uint64
}

// Generations counts mutations per key so that a load which overlapped a
// write never stores the value it read. Keys share striped counters: a
// collision only costs a skipped Set. The zero value is ready to use.
type Generations struct {
	stripes [generationStripes]generationStripe
}

func (g *Generations) stripe(key string) *generationStripe {
	return &g.stripes[xxhash.Sum64String(key)%generationStripes]
}

// Current returns the generation a load of key must still see when it is
// about to be stored.
func (g *Generations) Current(key string) uint64 {
	s := g.stripe(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Invalidate deletes keys from c and starts a new generation for each.
// Call it before and after the write that touches them.
func (g *Generations) Invalidate(c Cache, keys ...string) {
	for _, key := range keys {
		s := g.stripe(key)
		s.mu.Lock()
		c.Delete(key)
		s.gen++
		s.mu.Unlock()
	}
}

// setIfCurrent stores raw under key unless key was invalidated since gen.
func (g *Generations) setIfCurrent(c Cache, key string, gen uint64, raw []byte) bool {
	s := g.stripe(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	c.Set(key, raw)
	return true
}
