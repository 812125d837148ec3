package mixing

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/metrics"
)

func TestService_Mix(t *testing.T) {
	svc := NewService(16, time.Minute)

	report, err := svc.Mix(context.Background(), MixRequest{
		Product:     domain.Cocaine,
		Ingredients: []domain.Ingredient{domain.IngredientGasoline, domain.IngredientCuke, domain.IngredientBattery},
		State:       domain.DefaultMixState(),
	})

	require.NoError(t, err)
	assert.Equal(t, "CocaineGasolineCukeBattery", report.Key)
	assert.Equal(t, "Cocaine + Gasoline + Cuke + Battery", report.Sellable.Name)
	assert.Equal(t, set(domain.EffectEnergizing, domain.EffectBrightEyed, domain.EffectZombifying), report.Sellable.Effects)
	assert.Len(t, report.Steps, 3)
	assert.Equal(t, 330, report.Economics.SellPrice)
	assert.Equal(t, 100, report.Economics.Addictiveness)
	assert.Equal(t, 6, report.Economics.Yield)
}

func TestService_MixUsesCache(t *testing.T) {
	svc := NewService(16, time.Minute)
	req := MixRequest{Product: domain.Meth, Ingredients: []domain.Ingredient{domain.IngredientCuke, domain.IngredientMotorOil}}

	hits := testutil.ToFloat64(metrics.MixCacheLookups.WithLabelValues(CacheHit))
	misses := testutil.ToFloat64(metrics.MixCacheLookups.WithLabelValues(CacheMiss))

	first, err := svc.Mix(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Mix(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, first.Sellable.Equal(second.Sellable))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MixCacheLookups.WithLabelValues(CacheMiss))-misses)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.MixCacheLookups.WithLabelValues(CacheHit))-hits)

	// Mutating a returned mix never leaks into the cache
	second.Sellable.Ingredients[0] = domain.IngredientAddy
	third, err := svc.Mix(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.IngredientCuke, third.Sellable.Ingredients[0])
}

func TestService_MixRenameAndStateBypassCache(t *testing.T) {
	svc := NewService(16, time.Minute)
	ctx := context.Background()
	req := MixRequest{Product: domain.OGKush, Ingredients: []domain.Ingredient{domain.IngredientAddy}}

	plain, err := svc.Mix(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "OG Kush + Addy", plain.Sellable.Name)

	req.Name = "Thinker"
	req.State = domain.MixState{UsePot: true, Additives: domain.NewAdditiveSet(domain.AdditivePGR)}
	named, err := svc.Mix(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Thinker", named.Sellable.Name)
	assert.Equal(t, plain.Key, named.Key)
	assert.Equal(t, 16, named.Economics.Yield)
	assert.Equal(t, 8, plain.Economics.Yield)
}

func TestService_MixNoOpIngredients(t *testing.T) {
	svc := NewService(16, time.Minute)

	report, err := svc.Mix(context.Background(), MixRequest{
		Product:     domain.OGKush,
		Ingredients: []domain.Ingredient{domain.IngredientAddy, domain.IngredientAddy},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.Ingredient{domain.IngredientAddy}, report.Sellable.Ingredients)
	require.Len(t, report.Steps, 2)
	assert.False(t, report.Steps[1].Applied)
	assert.Equal(t, "14", report.Economics.Price.String(), "the dropped ingredient is not charged")
}

func TestService_MixValidation(t *testing.T) {
	svc := NewService(16, time.Minute)
	ctx := context.Background()

	tests := []struct {
		name string
		req  MixRequest
		err  error
	}{
		{"zero product", MixRequest{}, domain.ErrUnknownProduct},
		{"bad ingredient", MixRequest{Product: domain.Meth, Ingredients: []domain.Ingredient{domain.Ingredient(40)}}, domain.ErrUnknownIngredient},
		{"bad quality", MixRequest{Product: domain.Meth, State: domain.MixState{SoilQuality: domain.Quality(9)}}, domain.ErrUnknownQuality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.Mix(ctx, tt.req)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_Evaluate(t *testing.T) {
	svc := NewService(16, time.Minute)
	mix := Build(domain.Meth, domain.IngredientCuke, domain.IngredientMotorOil)

	report, err := svc.Evaluate(context.Background(), mix, domain.DefaultMixState())
	require.NoError(t, err)
	assert.Equal(t, 102, report.Economics.SellPrice)
	assert.Len(t, report.Steps, 2)

	_, err = svc.Evaluate(context.Background(), domain.Sellable{}, domain.DefaultMixState())
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
}

func TestService_Rules(t *testing.T) {
	svc := NewService(0, 0)

	assert.Len(t, svc.Rules(nil), 112)

	toxic := domain.EffectToxic
	assert.Len(t, svc.Rules(&toxic), 11)
}

func TestBuildCache_VersionInvalidation(t *testing.T) {
	cache := newBuildCache(4, time.Minute)
	mix := Build(domain.Meth, domain.IngredientCuke)
	key := buildKey(domain.Meth, mix.Ingredients)

	cache.Set(key, mix, nil)
	_, _, ok := cache.Get(key)
	require.True(t, ok)

	entry, _ := cache.lru.Get(key)
	entry.Version = "0.0"
	_, _, ok = cache.Get(key)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestBuildCache_StepsAreIsolated(t *testing.T) {
	cache := newBuildCache(4, time.Minute)
	mix, steps := NewEngine().BuildWithSteps(domain.Meth, domain.IngredientCuke, domain.IngredientBanana)
	require.Len(t, steps[1].Reaction.Fired, 1)
	want := steps[1].Reaction.Fired[0]
	key := buildKey(domain.Meth, mix.Ingredients)

	cache.Set(key, mix, steps)
	steps[1].Reaction.Fired[0].Result = domain.EffectLethal
	steps[1].Reaction.Blocked = append(steps[1].Reaction.Blocked, want)

	_, got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, got[1].Reaction.Fired[0])
	assert.Empty(t, got[1].Reaction.Blocked)

	got[1].Reaction.Fired[0].Result = domain.EffectLethal
	got[0].Applied = false

	_, again, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, again[1].Reaction.Fired[0])
	assert.True(t, again[0].Applied)
}

func TestBuildKey_KeepsNoOps(t *testing.T) {
	a := buildKey(domain.OGKush, []domain.Ingredient{domain.IngredientAddy})
	b := buildKey(domain.OGKush, []domain.Ingredient{domain.IngredientAddy, domain.IngredientAddy})
	assert.NotEqual(t, a, b)
}
