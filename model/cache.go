package model

import (
	"reflect"

	"github.com/jellydator/ttlcache/v3"
)

// lookupCache maps primary-key values to collection positions, integer keys
// are stored in canonicalKey form. Positions stay
// valid because records are never removed and keys never change, so entries
// are only filled after a scan found the first match.
type lookupCache struct {
	cache *ttlcache.Cache[any, int]
}

func newLookupCache(capacity uint64) *lookupCache {
	if capacity == 0 {
		return nil
	}
	return &lookupCache{
		cache: ttlcache.New[any, int](
			ttlcache.WithCapacity[any, int](capacity),
			ttlcache.WithDisableTouchOnHit[any, int](),
		),
	}
}

func (c *lookupCache) get(key any) (int, bool) {
	if c == nil || !cacheable(key) {
		return 0, false
	}
	item := c.cache.Get(canonicalKey(key))
	if item == nil {
		return 0, false
	}
	return item.Value(), true
}

func (c *lookupCache) set(key any, pos int) {
	if c == nil || !cacheable(key) {
		return
	}
	c.cache.Set(canonicalKey(key), pos, ttlcache.NoTTL)
}

func (c *lookupCache) len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

// cacheable limits keys to scalar kinds, hashing other dynamic types may panic.
func cacheable(key any) bool {
	switch reflect.ValueOf(key).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
