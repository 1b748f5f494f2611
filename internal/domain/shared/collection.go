package shared

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Collection is an insertion-ordered map used by the entity collections.
// Putting an existing key replaces the value and keeps its position.
// The zero value is ready to use. Not safe for concurrent mutation.
type Collection[K comparable, V any] struct {
	items *orderedmap.OrderedMap[K, V]
}

// Put stores value under key (last write wins)
func (c *Collection[K, V]) Put(key K, value V) {
	if c.items == nil {
		c.items = orderedmap.New[K, V]()
	}
	c.items.Set(key, value)
}

// Get returns the value stored under key
func (c *Collection[K, V]) Get(key K) (V, bool) {
	if c.items == nil {
		var zero V
		return zero, false
	}
	return c.items.Get(key)
}

// Values returns the stored values in insertion order
func (c *Collection[K, V]) Values() []V {
	out := make([]V, 0, c.Len())
	c.each(func(_ K, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Keys returns the keys in insertion order
func (c *Collection[K, V]) Keys() []K {
	out := make([]K, 0, c.Len())
	c.each(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Len returns the number of stored values
func (c *Collection[K, V]) Len() int {
	if c.items == nil {
		return 0
	}
	return c.items.Len()
}

// Find returns the first value, in insertion order, matching match
func (c *Collection[K, V]) Find(match func(V) bool) (V, bool) {
	var (
		found V
		ok    bool
	)
	c.each(func(_ K, v V) bool {
		if match(v) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// Filter returns every value matching match, in insertion order
func (c *Collection[K, V]) Filter(match func(V) bool) []V {
	var out []V
	c.each(func(_ K, v V) bool {
		if match(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}

// each walks the pairs oldest first until fn returns false
func (c *Collection[K, V]) each(fn func(K, V) bool) {
	if c.items == nil {
		return
	}
	for pair := c.items.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}
