package cache

// NopCache stores nothing.
type NopCache struct{}

func (NopCache) Get(string) ([]byte, bool) { return nil, false }

func (NopCache) Set(string, []byte) {}

func (NopCache) Delete(...string) {}

func (NopCache) PurgeExpired() int { return 0 }

func (NopCache) Len() int { return 0 }
