package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Mixing Metrics
var (
	MixesEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMixesEvaluated,
			Help: HelpTextMixesEvaluated,
		},
		[]string{LabelProduct},
	)

	IngredientApplications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIngredientApplications,
			Help: HelpTextIngredientApplications,
		},
		[]string{LabelIngredient, LabelOutcome},
	)

	MixCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMixCacheLookups,
			Help: HelpTextMixCacheLookups,
		},
		[]string{LabelResult},
	)

	MixEffects = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameMixEffects,
			Help:    HelpTextMixEffects,
			Buckets: EffectCountBuckets,
		},
		[]string{LabelProduct},
	)
)

// Recipe Metrics
var (
	SavedRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSavedRecipes,
			Help: HelpTextSavedRecipes,
		},
	)

	RecipeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeOperations,
			Help: HelpTextRecipeOperations,
		},
		[]string{LabelOperation},
	)
)

// Naming Metrics
var (
	NameResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNameResolutions,
			Help: HelpTextNameResolutions,
		},
		[]string{LabelKind, LabelResult},
	)
)
