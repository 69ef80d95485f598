//go:build property
// +build property

package template

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCacheProperties checks the cache against a plain map model for
// arbitrary Put/Invalidate sequences.
func TestCacheProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	id := gen.RegexMatch(`^[a-z]{1,4}$`)
	ids := gen.SliceOf(id)

	properties.Property("put then get round-trips", prop.ForAll(
		func(key string) bool {
			cache := NewCache()
			now := time.Now()
			cache.Put(key, nil, now)

			_, cachedAt, ok := cache.Get(key)
			return ok && cachedAt.Equal(now)
		},
		id,
	))

	properties.Property("len matches distinct put keys", prop.ForAll(
		func(keys []string) bool {
			cache := NewCache()
			model := make(map[string]bool)
			for _, key := range keys {
				cache.Put(key, nil, time.Time{})
				model[key] = true
			}
			return cache.Len() == len(model)
		},
		ids,
	))

	properties.Property("invalidate removes exactly the key", prop.ForAll(
		func(keys []string, victim string) bool {
			cache := NewCache()
			model := make(map[string]bool)
			for _, key := range keys {
				cache.Put(key, nil, time.Time{})
				model[key] = true
			}

			cache.Invalidate(victim)
			delete(model, victim)

			if cache.Len() != len(model) {
				return false
			}
			for key := range model {
				if _, _, ok := cache.Get(key); !ok {
					return false
				}
			}
			_, _, ok := cache.Get(victim)
			return !ok
		},
		ids, id,
	))

	properties.Property("clear empties the cache", prop.ForAll(
		func(keys []string) bool {
			cache := NewCache()
			for _, key := range keys {
				cache.Put(key, nil, time.Time{})
			}
			cache.Clear()
			return cache.Len() == 0
		},
		ids,
	))

	properties.TestingRun(t)
}
