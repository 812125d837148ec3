package mixing

import (
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cached build.
// Increment this when the rule table changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedBuild is a built mix plus its step history
type cachedBuild struct {
	Version  string
	Mix      domain.Sellable
	Steps    []Step
	CachedAt time.Time
}

// buildCache memoizes builds by product and requested ingredient sequence
// with time-based expiration and version-based invalidation.
type buildCache struct {
	lru *expirable.LRU[string, *cachedBuild]
}

func newBuildCache(size int, ttl time.Duration) *buildCache {
	return &buildCache{
		lru: expirable.NewLRU[string, *cachedBuild](size, nil, ttl),
	}
}

// buildKey identifies a build request. Unlike Sellable.Key it includes
// ingredients that end up dropped as no-ops.
func buildKey(p domain.Product, ingredients []domain.Ingredient) string {
	var sb strings.Builder
	sb.WriteString(p.String())
	for _, ing := range ingredients {
		sb.WriteByte('|')
		sb.WriteString(ing.String())
	}
	return sb.String()
}

// Get returns a copy of the cached build so callers cannot mutate the entry
func (c *buildCache) Get(key string) (domain.Sellable, []Step, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return domain.Sellable{}, nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return domain.Sellable{}, nil, false
	}

	return entry.Mix.Clone(), cloneSteps(entry.Steps), true
}

// Set stores a build with the current schema version
func (c *buildCache) Set(key string, mix domain.Sellable, steps []Step) {
	c.lru.Add(key, &cachedBuild{
		Version:  CacheSchemaVersion,
		Mix:      mix.Clone(),
		Steps:    cloneSteps(steps),
		CachedAt: time.Now(),
	})
}

func cloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.Reaction.Fired = slices.Clone(s.Reaction.Fired)
		s.Reaction.Blocked = slices.Clone(s.Reaction.Blocked)
		out[i] = s
	}
	return out
}

// Len returns the number of live entries
func (c *buildCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries from the cache
func (c *buildCache) Clear() {
	c.lru.Purge()
}
