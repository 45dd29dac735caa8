package cache

import (
	"container/list"
	"sync"
	"time"
)

type lruShard struct {
	mu         sync.Mutex
	totalBytes uint64
	maxBytes   uint64
	evictList  *list.List
	elems      map[string]*list.Element
	onEvict    OnEvict
}

func newLruShard(maxBytes uint64) *lruShard {
	return &lruShard{
		maxBytes:  maxBytes,
		evictList: list.New(),
		elems:     make(map[string]*list.Element),
	}
}

type entry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

func (ls *lruShard) get(key string, now time.Time) ([]byte, bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	elem, ok := ls.elems[key]
	if !ok {
		return nil, false
	}

	e := elem.Value.(*entry)
	if e.expired(now) {
		ls.removeElementUnderLock(elem)
		return nil, false
	}

	ls.evictList.MoveToFront(elem)
	return e.value, true
}

// add stores value under key and reports whether older entries were evicted
// to make room. A value larger than the shard is not stored.
func (ls *lruShard) add(key string, value []byte, expiresAt time.Time) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	size := uint64(len(value))
	if size > ls.maxBytes {
		if elem, ok := ls.elems[key]; ok {
			ls.removeElementUnderLock(elem)
		}
		return false
	}

	if elem, ok := ls.elems[key]; ok {
		e := elem.Value.(*entry)
		ls.totalBytes -= uint64(len(e.value))
		e.value = value
		e.expiresAt = expiresAt
		ls.totalBytes += size
		ls.evictList.MoveToFront(elem)
		return ls.shrinkUnderLock(elem)
	}

	elem := ls.evictList.PushFront(&entry{key: key, value: value, expiresAt: expiresAt})
	ls.elems[key] = elem
	ls.totalBytes += size
	return ls.shrinkUnderLock(elem)
}

// shrinkUnderLock evicts the oldest entries, never keep, until the shard
// fits its byte budget.
func (ls *lruShard) shrinkUnderLock(keep *list.Element) bool {
	var evicted bool
	for ls.totalBytes > ls.maxBytes {
		oldest := ls.evictList.Back()
		if oldest == nil || oldest == keep {
			break
		}

		key := ls.removeElementUnderLock(oldest)
		evicted = true
		if ls.onEvict != nil {
			ls.onEvict(key)
		}
	}
	return evicted
}

func (ls *lruShard) remove(key string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	elem, ok := ls.elems[key]
	if !ok {
		return false
	}

	ls.removeElementUnderLock(elem)
	return true
}

func (ls *lruShard) purgeExpired(now time.Time) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	var purged int
	for elem := ls.evictList.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry).expired(now) {
			ls.removeElementUnderLock(elem)
			purged++
		}
		elem = prev
	}
	return purged
}

func (ls *lruShard) removeElementUnderLock(elem *list.Element) string {
	ls.evictList.Remove(elem)

	e := elem.Value.(*entry)
	delete(ls.elems, e.key)
	ls.totalBytes -= uint64(len(e.value))
	return e.key
}

func (ls *lruShard) len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.elems)
}

func (ls *lruShard) bytes() uint64 {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.totalBytes
}
