package myutil

import (
	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/myutil/dblist"
)

// LRU is a least-recently-used eviction policy cache. It has a defined size in number of items. If
// the LRU is full when putting an item, the key that was least recently Get or Put is evicted to
// make space.
//
// Entries are kept in a ring ordered from least to most recently used. The head of the ring is the
// next eviction candidate and new entries go in just behind it, at the tail.
//
// LRU's methods may not be called concurrently.
type LRU[K comparable, V any] struct {
	items map[K]*lruEntry[K, V]
	head  *lruEntry[K, V]
	size  int
}

type lruEntry[K comparable, V any] struct {
	dblist.Entry[*lruEntry[K, V]]
	k K
	v V
}

var _ Cache[byte, int] = &LRU[byte, int]{}

func NewLRU[K comparable, V any](size int) *LRU[K, V] {
	return &LRU[K, V]{
		items: make(map[K]*lruEntry[K, V], size),
		size:  size,
	}
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.unlink(e)
	c.pushBack(e)
	return e.v, true
}

func (c *LRU[K, V]) Put(key K, value V) {
	if e, ok := c.items[key]; ok {
		e.v = value
		c.unlink(e)
		c.pushBack(e)
		return
	}
	e := &lruEntry[K, V]{k: key, v: value}
	c.items[key] = e
	c.pushBack(e)
	if len(c.items) > c.size {
		c.Forget(c.head.k)
	}
}

func (c *LRU[K, V]) Forget(key K) {
	e, ok := c.items[key]
	if !ok {
		return
	}
	c.unlink(e)
	delete(c.items, key)
}

func (c *LRU[K, V]) Len() int { return len(c.items) }

// Keys returns the resident keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	entries := make([]*lruEntry[K, V], 0, len(c.items))
	it := dblist.NewIter(c.head)
	for it.Next() {
		entries = append(entries, it.Current())
	}
	return xslices.Map(entries, func(e *lruEntry[K, V]) K { return e.k })
}

// pushBack appends e at the tail, which is just before the head.
func (c *LRU[K, V]) pushBack(e *lruEntry[K, V]) {
	it := dblist.NewIter(c.head)
	it.Insert(e, nil)
	if c.head == nil {
		c.head = e
	}
}

func (c *LRU[K, V]) unlink(e *lruEntry[K, V]) {
	it := dblist.NewIter(e)
	if e == c.head {
		it.Remove(&c.head)
	} else {
		it.Remove(nil)
	}
}
