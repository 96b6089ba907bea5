package layout

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of layout trees kept by NewCache(0).
const DefaultCacheSize = 64

type cacheKey struct {
	hash   uint64
	limits Limits
}

// Cache reuses layout trees whose widget hash and limits are unchanged.
type Cache struct {
	entries *lru.Cache[cacheKey, *Node]
	hits    int
	misses  int
}

// NewCache creates a cache holding up to size trees.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, *Node](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Layout returns a copy of the tree cached for hash and limits, computing and
// storing it with compute on a miss.
func (c *Cache) Layout(hash uint64, limits Limits, compute func() *Node) *Node {
	key := cacheKey{hash: hash, limits: limits}
	if node, ok := c.entries.Get(key); ok {
		c.hits++
		return node.Clone()
	}
	c.misses++
	node := compute()
	c.entries.Add(key, node.Clone())
	return node
}

// Stats returns hit and miss counts since creation or the last Purge.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Len returns the number of cached trees.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached tree.
func (c *Cache) Purge() {
	c.entries.Purge()
	c.hits, c.misses = 0, 0
}
