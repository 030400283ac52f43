// Package myutil holds consumers of the intrusive lists in list and dblist.
package myutil

// Cache is an in-memory cache. This holds the actual keys and values, and most importantly
// implements the eviction policy.
type Cache[K any, V any] interface {
	// Put adds the given key and value to the Cache, possibly evicting another key.
	Put(K, V)
	// Get returns the value associated with the given key, or false in the second return if the key
	// is not resident.
	Get(K) (V, bool)
	// Forget removes the given key from the cache.
	Forget(K)
}
