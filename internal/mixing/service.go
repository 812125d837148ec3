package mixing

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/economy"
	"github.com/osse101/MixCalc_Go/internal/logger"
	"github.com/osse101/MixCalc_Go/internal/metrics"
)

// Service evaluates mixes for the network surfaces
type Service interface {
	Mix(ctx context.Context, req MixRequest) (*MixReport, error)
	Evaluate(ctx context.Context, mix domain.Sellable, state domain.MixState) (*MixReport, error)
	Rules(incoming *domain.Effect) []Rule
	ClearCache()
}

// MixRequest asks for a product mixed with ingredients in order
type MixRequest struct {
	Product     domain.Product
	Ingredients []domain.Ingredient
	Name        string
	State       domain.MixState
}

// MixReport is a built mix with its key, history and economics
type MixReport struct {
	Sellable  domain.Sellable `json:"sellable"`
	Key       string          `json:"key"`
	Steps     []Step          `json:"steps"`
	Economics economy.Report  `json:"economics"`
}

type service struct {
	engine *Engine
	cache  *buildCache
}

// NewService creates a mixing service with a memo cache of the given size and TTL
func NewService(cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		engine: NewEngine(),
		cache:  newBuildCache(cacheSize, cacheTTL),
	}
}

// Mix builds the requested mix, reusing a cached build when the same product
// and ingredient sequence was evaluated recently
func (s *service) Mix(ctx context.Context, req MixRequest) (*MixReport, error) {
	log := logger.FromContext(ctx)

	if err := validateRequest(req); err != nil {
		log.Warn("Rejected mix request", "error", err)
		return nil, err
	}

	key := buildKey(req.Product, req.Ingredients)
	mix, steps, hit := s.cache.Get(key)
	if hit {
		metrics.MixCacheLookups.WithLabelValues(CacheHit).Inc()
	} else {
		metrics.MixCacheLookups.WithLabelValues(CacheMiss).Inc()
		mix, steps = s.engine.BuildWithSteps(req.Product, req.Ingredients...)
		for _, step := range steps {
			outcome := OutcomeNoOp
			if step.Applied {
				outcome = OutcomeChanged
			}
			metrics.IngredientApplications.WithLabelValues(step.Ingredient.String(), outcome).Inc()
		}
		s.cache.Set(key, mix, steps)
	}

	if req.Name != "" {
		mix = Rename(mix, req.Name)
	}

	log.Debug("Mix built",
		"product", req.Product.String(),
		"requested", len(req.Ingredients),
		"applied", len(mix.Ingredients),
		"effects", mix.Effects.String(),
		"cached", hit)

	return s.report(mix, steps, req.State), nil
}

// Evaluate prices an already built mix, such as a saved recipe
func (s *service) Evaluate(ctx context.Context, mix domain.Sellable, state domain.MixState) (*MixReport, error) {
	if !mix.Base.Valid() {
		logger.FromContext(ctx).Warn("Rejected mix evaluation", "product", mix.Base.String())
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProduct, mix.Base)
	}
	return s.report(mix, s.engine.Replay(mix), state), nil
}

// Rules returns the rule table, optionally only the rules for one incoming effect
func (s *service) Rules(incoming *domain.Effect) []Rule {
	if incoming == nil {
		return s.engine.Rules()
	}
	return s.engine.RulesFor(*incoming)
}

// ClearCache drops every memoized build
func (s *service) ClearCache() {
	s.cache.Clear()
}

func (s *service) report(mix domain.Sellable, steps []Step, state domain.MixState) *MixReport {
	metrics.MixesEvaluated.WithLabelValues(mix.Base.String()).Inc()
	metrics.MixEffects.WithLabelValues(mix.Base.String()).Observe(float64(mix.Effects.Len()))

	return &MixReport{
		Sellable:  mix,
		Key:       mix.Key(),
		Steps:     steps,
		Economics: economy.Evaluate(mix, state),
	}
}

func validateRequest(req MixRequest) error {
	if !req.Product.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownProduct, req.Product)
	}
	for i, ing := range req.Ingredients {
		if !ing.Valid() {
			return fmt.Errorf("%w: position %d", domain.ErrUnknownIngredient, i)
		}
	}
	if !req.State.SoilQuality.Valid() || !req.State.PseudoQuality.Valid() {
		return fmt.Errorf("%w: quality out of range", domain.ErrUnknownQuality)
	}
	return nil
}
