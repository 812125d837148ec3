package mixing

import (
	"fmt"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

// GuardKind selects how a guard reads the effect set
type GuardKind uint8

const (
	// GuardNone applies the rule unconditionally
	GuardNone GuardKind = iota
	// GuardRequires applies the rule only when the guard effect is present
	GuardRequires
	// GuardExcludes applies the rule only when the guard effect is absent
	GuardExcludes
)

func (k GuardKind) String() string {
	switch k {
	case GuardRequires:
		return guardNameRequires
	case GuardExcludes:
		return guardNameExcludes
	default:
		return guardNameNone
	}
}

// MarshalText implements encoding.TextMarshaler
func (k GuardKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Guard is an extra condition on a rule, evaluated against the effect set as it
// was before the ingredient went in. The zero value is unguarded.
type Guard struct {
	Kind   GuardKind     `json:"kind"`
	Effect domain.Effect `json:"effect"`
}

// Allows reports whether the guard admits a rule for the frozen effect set
func (g Guard) Allows(frozen domain.EffectSet) bool {
	switch g.Kind {
	case GuardRequires:
		return frozen.Has(g.Effect)
	case GuardExcludes:
		return !frozen.Has(g.Effect)
	default:
		return true
	}
}

// Rule rewrites Existing into Result when an ingredient brings Incoming
type Rule struct {
	Existing domain.Effect `json:"existing"`
	Incoming domain.Effect `json:"incoming"`
	Result   domain.Effect `json:"result"`
	Guard    Guard         `json:"guard"`
}

// String renders the rule, e.g. "Energizing + Foggy -> Cyclopean unless ThoughtProvoking"
func (r Rule) String() string {
	s := fmt.Sprintf("%s + %s -> %s", r.Existing, r.Incoming, r.Result)
	if r.Guard.Kind != GuardNone {
		s += fmt.Sprintf(" %s %s", r.Guard.Kind, r.Guard.Effect)
	}
	return s
}

func rule(existing, incoming, result domain.Effect, guard ...Guard) Rule {
	r := Rule{Existing: existing, Incoming: incoming, Result: result}
	if len(guard) > 0 {
		r.Guard = guard[0]
	}
	return r
}

func requires(e domain.Effect) Guard {
	return Guard{Kind: GuardRequires, Effect: e}
}

func unless(e domain.Effect) Guard {
	return Guard{Kind: GuardExcludes, Effect: e}
}

// reactionRules is the complete transformation table, sorted by existing effect
// and then incoming effect. Application order follows table order.
var reactionRules = []Rule{
	rule(domain.EffectAntiGravity, domain.EffectCalorieDense, domain.EffectSlippery),
	rule(domain.EffectAntiGravity, domain.EffectLongFaced, domain.EffectCalming),
	rule(domain.EffectAntiGravity, domain.EffectSpicy, domain.EffectTropicThunder),

	rule(domain.EffectAthletic, domain.EffectFoggy, domain.EffectLaxative),
	rule(domain.EffectAthletic, domain.EffectSedating, domain.EffectMunchies),
	rule(domain.EffectAthletic, domain.EffectSpicy, domain.EffectEuphoric),
	rule(domain.EffectAthletic, domain.EffectTropicThunder, domain.EffectSneaky),

	rule(domain.EffectBalding, domain.EffectCalorieDense, domain.EffectSneaky),

	rule(domain.EffectCalming, domain.EffectBalding, domain.EffectAntiGravity),
	rule(domain.EffectCalming, domain.EffectFoggy, domain.EffectGlowing),
	rule(domain.EffectCalming, domain.EffectGingeritis, domain.EffectSneaky),
	rule(domain.EffectCalming, domain.EffectJennerising, domain.EffectBalding),
	rule(domain.EffectCalming, domain.EffectSedating, domain.EffectBrightEyed),
	rule(domain.EffectCalming, domain.EffectSneaky, domain.EffectSlippery),

	rule(domain.EffectCalorieDense, domain.EffectBalding, domain.EffectSneaky),
	rule(domain.EffectCalorieDense, domain.EffectCalorieDense, domain.EffectExplosive),
	rule(domain.EffectCalorieDense, domain.EffectJennerising, domain.EffectGingeritis),

	rule(domain.EffectCyclopean, domain.EffectBrightEyed, domain.EffectGlowing),
	rule(domain.EffectCyclopean, domain.EffectGingeritis, domain.EffectThoughtProvoking),
	rule(domain.EffectCyclopean, domain.EffectSedating, domain.EffectFoggy),

	rule(domain.EffectDisorienting, domain.EffectAthletic, domain.EffectElectrifying),
	rule(domain.EffectDisorienting, domain.EffectGingeritis, domain.EffectFocused),
	rule(domain.EffectDisorienting, domain.EffectToxic, domain.EffectGlowing),
	rule(domain.EffectDisorienting, domain.EffectTropicThunder, domain.EffectToxic),

	rule(domain.EffectElectrifying, domain.EffectBrightEyed, domain.EffectEuphoric, unless(domain.EffectZombifying)),
	rule(domain.EffectElectrifying, domain.EffectSedating, domain.EffectRefreshing),
	rule(domain.EffectElectrifying, domain.EffectSneaky, domain.EffectAthletic),
	rule(domain.EffectElectrifying, domain.EffectToxic, domain.EffectDisorienting),

	rule(domain.EffectEnergizing, domain.EffectFoggy, domain.EffectCyclopean, unless(domain.EffectThoughtProvoking)),
	rule(domain.EffectEnergizing, domain.EffectGingeritis, domain.EffectThoughtProvoking, unless(domain.EffectCyclopean)),
	rule(domain.EffectEnergizing, domain.EffectSlippery, domain.EffectMunchies),
	rule(domain.EffectEnergizing, domain.EffectSneaky, domain.EffectParanoia, unless(domain.EffectMunchies)),
	rule(domain.EffectEnergizing, domain.EffectToxic, domain.EffectEuphoric),

	rule(domain.EffectEuphoric, domain.EffectAthletic, domain.EffectEnergizing),
	rule(domain.EffectEuphoric, domain.EffectBrightEyed, domain.EffectZombifying, unless(domain.EffectElectrifying)),
	rule(domain.EffectEuphoric, domain.EffectEnergizing, domain.EffectLaxative),
	rule(domain.EffectEuphoric, domain.EffectJennerising, domain.EffectSeizureInducing),
	rule(domain.EffectEuphoric, domain.EffectSedating, domain.EffectToxic),
	rule(domain.EffectEuphoric, domain.EffectSlippery, domain.EffectSedating),
	rule(domain.EffectEuphoric, domain.EffectToxic, domain.EffectSpicy, unless(domain.EffectEnergizing)),
	rule(domain.EffectEuphoric, domain.EffectTropicThunder, domain.EffectBrightEyed),

	rule(domain.EffectExplosive, domain.EffectBalding, domain.EffectSedating),
	rule(domain.EffectExplosive, domain.EffectThoughtProvoking, domain.EffectEuphoric),

	rule(domain.EffectFocused, domain.EffectAthletic, domain.EffectShrinking),
	rule(domain.EffectFocused, domain.EffectBalding, domain.EffectJennerising),
	rule(domain.EffectFocused, domain.EffectCalorieDense, domain.EffectEuphoric),
	rule(domain.EffectFocused, domain.EffectFoggy, domain.EffectDisorienting),
	rule(domain.EffectFocused, domain.EffectGingeritis, domain.EffectSeizureInducing),
	rule(domain.EffectFocused, domain.EffectSedating, domain.EffectCalming),
	rule(domain.EffectFocused, domain.EffectSneaky, domain.EffectGingeritis),

	rule(domain.EffectFoggy, domain.EffectAthletic, domain.EffectLaxative),
	rule(domain.EffectFoggy, domain.EffectEnergizing, domain.EffectCyclopean),
	rule(domain.EffectFoggy, domain.EffectJennerising, domain.EffectParanoia),
	rule(domain.EffectFoggy, domain.EffectSlippery, domain.EffectToxic),
	rule(domain.EffectFoggy, domain.EffectSneaky, domain.EffectCalming),
	rule(domain.EffectFoggy, domain.EffectThoughtProvoking, domain.EffectEnergizing),

	rule(domain.EffectGingeritis, domain.EffectEnergizing, domain.EffectThoughtProvoking),
	rule(domain.EffectGingeritis, domain.EffectLongFaced, domain.EffectRefreshing),
	rule(domain.EffectGingeritis, domain.EffectToxic, domain.EffectSmelly),

	rule(domain.EffectGlowing, domain.EffectAthletic, domain.EffectDisorienting),
	rule(domain.EffectGlowing, domain.EffectSneaky, domain.EffectToxic),
	rule(domain.EffectGlowing, domain.EffectThoughtProvoking, domain.EffectRefreshing),

	rule(domain.EffectJennerising, domain.EffectCalorieDense, domain.EffectGingeritis),
	rule(domain.EffectJennerising, domain.EffectFoggy, domain.EffectParanoia),
	rule(domain.EffectJennerising, domain.EffectToxic, domain.EffectSneaky),

	rule(domain.EffectLaxative, domain.EffectBrightEyed, domain.EffectCalorieDense),
	rule(domain.EffectLaxative, domain.EffectSedating, domain.EffectEuphoric),
	rule(domain.EffectLaxative, domain.EffectSpicy, domain.EffectLongFaced),
	rule(domain.EffectLaxative, domain.EffectToxic, domain.EffectFoggy),
	rule(domain.EffectLaxative, domain.EffectTropicThunder, domain.EffectCalming),

	rule(domain.EffectLongFaced, domain.EffectGingeritis, domain.EffectRefreshing),
	rule(domain.EffectLongFaced, domain.EffectThoughtProvoking, domain.EffectElectrifying),

	rule(domain.EffectMunchies, domain.EffectBrightEyed, domain.EffectTropicThunder),
	rule(domain.EffectMunchies, domain.EffectEnergizing, domain.EffectAthletic),
	rule(domain.EffectMunchies, domain.EffectSedating, domain.EffectSlippery),
	rule(domain.EffectMunchies, domain.EffectSlippery, domain.EffectSchizophrenic, unless(domain.EffectEnergizing)),
	rule(domain.EffectMunchies, domain.EffectSneaky, domain.EffectAntiGravity),
	rule(domain.EffectMunchies, domain.EffectSpicy, domain.EffectToxic),
	rule(domain.EffectMunchies, domain.EffectToxic, domain.EffectSedating),

	rule(domain.EffectParanoia, domain.EffectGingeritis, domain.EffectJennerising),
	rule(domain.EffectParanoia, domain.EffectSlippery, domain.EffectAntiGravity),
	rule(domain.EffectParanoia, domain.EffectSneaky, domain.EffectBalding),
	rule(domain.EffectParanoia, domain.EffectToxic, domain.EffectCalming),

	rule(domain.EffectRefreshing, domain.EffectJennerising, domain.EffectThoughtProvoking),

	rule(domain.EffectSchizophrenic, domain.EffectAthletic, domain.EffectBalding),

	rule(domain.EffectSedating, domain.EffectAthletic, domain.EffectMunchies),
	rule(domain.EffectSedating, domain.EffectThoughtProvoking, domain.EffectGingeritis),

	rule(domain.EffectSeizureInducing, domain.EffectFoggy, domain.EffectFocused),

	rule(domain.EffectShrinking, domain.EffectBrightEyed, domain.EffectMunchies),
	rule(domain.EffectShrinking, domain.EffectCalorieDense, domain.EffectEnergizing),
	rule(domain.EffectShrinking, domain.EffectFoggy, domain.EffectElectrifying),
	rule(domain.EffectShrinking, domain.EffectSedating, domain.EffectParanoia),
	rule(domain.EffectShrinking, domain.EffectSpicy, domain.EffectRefreshing),
	rule(domain.EffectShrinking, domain.EffectToxic, domain.EffectFocused),

	rule(domain.EffectSlippery, domain.EffectEnergizing, domain.EffectMunchies),
	rule(domain.EffectSlippery, domain.EffectEnergizing, domain.EffectAthletic, requires(domain.EffectMunchies)),
	rule(domain.EffectSlippery, domain.EffectFoggy, domain.EffectToxic),

	rule(domain.EffectSmelly, domain.EffectGingeritis, domain.EffectAntiGravity),

	rule(domain.EffectSneaky, domain.EffectEnergizing, domain.EffectParanoia),
	rule(domain.EffectSneaky, domain.EffectFoggy, domain.EffectCalming),
	rule(domain.EffectSneaky, domain.EffectSpicy, domain.EffectBrightEyed),
	rule(domain.EffectSneaky, domain.EffectToxic, domain.EffectTropicThunder),

	rule(domain.EffectSpicy, domain.EffectAthletic, domain.EffectEuphoric),
	rule(domain.EffectSpicy, domain.EffectSneaky, domain.EffectBrightEyed),

	rule(domain.EffectThoughtProvoking, domain.EffectFoggy, domain.EffectCyclopean),
	rule(domain.EffectThoughtProvoking, domain.EffectLongFaced, domain.EffectElectrifying),
	rule(domain.EffectThoughtProvoking, domain.EffectSedating, domain.EffectGingeritis),

	rule(domain.EffectToxic, domain.EffectEnergizing, domain.EffectEuphoric),
	rule(domain.EffectToxic, domain.EffectGingeritis, domain.EffectSmelly),
	rule(domain.EffectToxic, domain.EffectJennerising, domain.EffectSneaky),
	rule(domain.EffectToxic, domain.EffectSneaky, domain.EffectTropicThunder),

	rule(domain.EffectTropicThunder, domain.EffectAthletic, domain.EffectSneaky),
}
