package mixing

import "time"

// Guard kind names
const (
	guardNameNone     = "none"
	guardNameRequires = "if"
	guardNameExcludes = "unless"
)

// Ingredient application outcomes for metrics
const (
	OutcomeChanged = "changed"
	OutcomeNoOp    = "noop"
)

// Cache lookup results for metrics
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Cache defaults
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
)

// Name suffix separator used when an ingredient changes a mix
const nameSeparator = " + "
