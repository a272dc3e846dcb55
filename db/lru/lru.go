// Package lru wraps hashicorp's golang-lru with a panic-free constructor
// for fixed sizes and nil-returning lookups.
package lru

import (
	glru "github.com/hashicorp/golang-lru"
)

// Cache implements a least-recently-used cache that is safe for concurrent use.
type Cache struct {
	lru *glru.Cache
}

// New creates a new LRU Cache with a given maximum number of entries.
// It panics if size is not positive.
func New(size int) *Cache {
	lru, err := glru.New(size)
	if err != nil {
		panic(err)
	}
	return &Cache{lru: lru}
}

// Add inserts a new element to the cache
func (l *Cache) Add(key, value interface{}) {
	l.lru.Add(key, value)
}

// Get retrieves an element from the cache
func (l *Cache) Get(key interface{}) interface{} {
	value, ok := l.lru.Get(key)
	if !ok {
		return nil
	}
	return value
}

// Remove evicts key from the cache, if present.
func (l *Cache) Remove(key interface{}) {
	l.lru.Remove(key)
}

// Purge empties the cache.
func (l *Cache) Purge() {
	l.lru.Purge()
}

// Len returns the number of cached elements.
func (l *Cache) Len() int {
	return l.lru.Len()
}
