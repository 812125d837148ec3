package mixing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

func set(effects ...domain.Effect) domain.EffectSet {
	return domain.NewEffectSet(effects...)
}

func TestReact(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		current  domain.EffectSet
		incoming domain.Effect
		expected domain.EffectSet
	}{
		{
			name:     "empty set takes the incoming effect",
			current:  0,
			incoming: domain.EffectToxic,
			expected: set(domain.EffectToxic),
		},
		{
			name:     "rewrite then insert",
			current:  set(domain.EffectCalorieDense),
			incoming: domain.EffectCalorieDense,
			expected: set(domain.EffectExplosive, domain.EffectCalorieDense),
		},
		{
			name:     "guards read the set before any rewrite",
			current:  set(domain.EffectSlippery),
			incoming: domain.EffectEnergizing,
			expected: set(domain.EffectMunchies, domain.EffectEnergizing),
		},
		{
			name:     "required guard present",
			current:  set(domain.EffectSlippery, domain.EffectMunchies),
			incoming: domain.EffectEnergizing,
			expected: set(domain.EffectMunchies, domain.EffectAthletic, domain.EffectEnergizing),
		},
		{
			name:     "excluding guard suppresses a rule",
			current:  set(domain.EffectEnergizing, domain.EffectMunchies),
			incoming: domain.EffectSlippery,
			expected: set(domain.EffectEnergizing, domain.EffectMunchies, domain.EffectSlippery),
		},
		{
			name:     "rewrite skipped when result already present",
			current:  set(domain.EffectJennerising, domain.EffectSneaky),
			incoming: domain.EffectToxic,
			expected: set(domain.EffectJennerising, domain.EffectTropicThunder, domain.EffectToxic),
		},
		{
			name:     "present incoming effect is not duplicated",
			current:  set(domain.EffectCalming, domain.EffectThoughtProvoking),
			incoming: domain.EffectThoughtProvoking,
			expected: set(domain.EffectCalming, domain.EffectThoughtProvoking),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.React(tt.current, tt.incoming))
		})
	}
}

func TestReact_FullSetStillRewrites(t *testing.T) {
	engine := NewEngine()
	full := set(
		domain.EffectAntiGravity, domain.EffectAthletic, domain.EffectBalding, domain.EffectBrightEyed,
		domain.EffectCalming, domain.EffectCalorieDense, domain.EffectCyclopean, domain.EffectDisorienting,
	)
	require.True(t, full.Full())

	got := engine.React(full, domain.EffectFoggy)
	assert.Equal(t, set(
		domain.EffectAntiGravity, domain.EffectLaxative, domain.EffectBalding, domain.EffectBrightEyed,
		domain.EffectGlowing, domain.EffectCalorieDense, domain.EffectCyclopean, domain.EffectDisorienting,
	), got)
	assert.False(t, got.Has(domain.EffectFoggy), "no room for the incoming effect")

	assert.Equal(t, full, engine.React(full, domain.EffectZombifying), "nothing reacts and there is no room")
}

func TestReact_NeverExceedsCapacity(t *testing.T) {
	engine := NewEngine()
	frontier := []domain.EffectSet{0}
	for _, p := range domain.AllProducts() {
		frontier = append(frontier, p.StartingEffects())
	}

	for depth := 0; depth < 4; depth++ {
		seen := make(map[domain.EffectSet]bool)
		var next []domain.EffectSet
		for _, s := range frontier {
			for _, ing := range domain.AllIngredients() {
				out := engine.React(s, ing.Effect())
				require.LessOrEqual(t, out.Len(), domain.MaxEffects)
				if !seen[out] {
					seen[out] = true
					next = append(next, out)
				}
			}
		}
		frontier = next
	}
}

func TestReact_UnknownIncoming(t *testing.T) {
	current := set(domain.EffectCalming)
	assert.Equal(t, current, NewEngine().React(current, domain.Effect(77)))
}

func TestTrace(t *testing.T) {
	engine := NewEngine()
	before := set(domain.EffectJennerising, domain.EffectSneaky, domain.EffectGingeritis)

	reaction := engine.Trace(before, domain.EffectToxic)

	assert.Equal(t, domain.EffectToxic, reaction.Incoming)
	assert.Equal(t, before, reaction.Before)
	assert.Equal(t, set(domain.EffectSmelly, domain.EffectJennerising, domain.EffectTropicThunder, domain.EffectToxic), reaction.After)
	assert.Equal(t, engine.React(before, domain.EffectToxic), reaction.After)
	assert.True(t, reaction.Changed())
	assert.True(t, reaction.Inserted)

	require.Len(t, reaction.Fired, 2)
	assert.Equal(t, domain.EffectSmelly, reaction.Fired[0].Result)
	assert.Equal(t, domain.EffectTropicThunder, reaction.Fired[1].Result)
	require.Len(t, reaction.Blocked, 1)
	assert.Equal(t, domain.EffectJennerising, reaction.Blocked[0].Existing)
}

func TestTrace_NoChange(t *testing.T) {
	before := set(domain.EffectCalming, domain.EffectThoughtProvoking)
	reaction := NewEngine().Trace(before, domain.EffectThoughtProvoking)

	assert.False(t, reaction.Changed())
	assert.False(t, reaction.Inserted)
	assert.Empty(t, reaction.Fired)
}

func TestNewEngine_CustomTable(t *testing.T) {
	engine := newEngine([]Rule{
		rule(domain.EffectCalming, domain.EffectToxic, domain.EffectLethal),
	})
	assert.Equal(t, set(domain.EffectLethal, domain.EffectToxic), engine.React(set(domain.EffectCalming), domain.EffectToxic))
}
