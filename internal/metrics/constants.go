package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Mixing metric names
const (
	MetricNameMixesEvaluated         = "mixes_evaluated_total"
	MetricNameIngredientApplications = "ingredient_applications_total"
	MetricNameMixCacheLookups        = "mix_cache_lookups_total"
	MetricNameMixEffects             = "mix_effects"
)

// Recipe metric names
const (
	MetricNameSavedRecipes     = "saved_recipes"
	MetricNameRecipeOperations = "recipe_operations_total"
)

// Naming metric names
const (
	MetricNameNameResolutions = "name_resolutions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Mixing metric help text
const (
	HelpTextMixesEvaluated         = "Total number of mixes evaluated"
	HelpTextIngredientApplications = "Total number of ingredient applications by outcome"
	HelpTextMixCacheLookups        = "Total number of mix cache lookups by result"
	HelpTextMixEffects             = "Number of effects on evaluated mixes"
)

// Recipe metric help text
const (
	HelpTextSavedRecipes     = "Current number of saved recipes"
	HelpTextRecipeOperations = "Total number of recipe book operations"
)

// Naming metric help text
const (
	HelpTextNameResolutions = "Total number of name lookups by kind and result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelProduct    = "product"
	LabelIngredient = "ingredient"
	LabelOutcome    = "outcome"
	LabelResult     = "result"
	LabelOperation  = "operation"
	LabelKind       = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EffectCountBuckets covers every possible effect count of a mix
var EffectCountBuckets = []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}

// unmatchedRoute labels requests that did not match a registered route
const unmatchedRoute = "unmatched"
