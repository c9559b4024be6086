package web

import "sync"

// frameCache remembers the last few encoded frames by hash so
// repeated frames can be sent as a one-byte reference instead
// of a full payload.
type frameCache struct {
	entries []cacheEntry
	idx     int

	sync.RWMutex
}

type cacheEntry struct {
	hash uint64
	data []byte
}

func newFrameCache(size int) *frameCache {
	return &frameCache{entries: make([]cacheEntry, size)}
}

// index returns the slot holding hash, or -1.
func (c *frameCache) index(hash uint64) int {
	c.RLock()
	defer c.RUnlock()
	for i, e := range c.entries {
		if e.hash == hash && e.data != nil {
			return i
		}
	}
	return -1
}

// add stores data in the next ring slot and returns the slot
// index.
func (c *frameCache) add(hash uint64, data []byte) int {
	c.Lock()
	defer c.Unlock()
	i := c.idx
	c.entries[i] = cacheEntry{hash: hash, data: data}
	c.idx = (c.idx + 1) % len(c.entries)
	return i
}

// get returns the payload in slot i.
func (c *frameCache) get(i int) []byte {
	c.RLock()
	defer c.RUnlock()
	return c.entries[i].data
}
