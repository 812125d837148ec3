package mixing

import (
	"slices"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

// Engine applies the reaction rule table (pure, no side effects)
type Engine struct {
	rules      []Rule
	byIncoming [domain.NumEffects][]int
}

// NewEngine creates an engine over the standard rule table
func NewEngine() *Engine {
	return newEngine(reactionRules)
}

func newEngine(rules []Rule) *Engine {
	e := &Engine{rules: rules}
	for i, r := range rules {
		e.byIncoming[r.Incoming] = append(e.byIncoming[r.Incoming], i)
	}
	return e
}

// Rules returns a copy of the rule table in application order
func (e *Engine) Rules() []Rule {
	return slices.Clone(e.rules)
}

// RulesFor returns the rules triggered by an incoming effect, in application order
func (e *Engine) RulesFor(incoming domain.Effect) []Rule {
	if !incoming.Valid() {
		return nil
	}
	idx := e.byIncoming[incoming]
	out := make([]Rule, 0, len(idx))
	for _, i := range idx {
		out = append(out, e.rules[i])
	}
	return out
}

// Reaction records what happened when an effect was introduced into a set
type Reaction struct {
	Incoming domain.Effect    `json:"incoming"`
	Before   domain.EffectSet `json:"before"`
	After    domain.EffectSet `json:"after"`
	// Fired are the rules that rewrote an effect
	Fired []Rule `json:"fired"`
	// Blocked matched but were skipped because the result was already present
	Blocked []Rule `json:"blocked"`
	// Inserted is true when the incoming effect itself was added
	Inserted bool `json:"inserted"`
}

// Changed reports whether the reaction altered the effect set
func (r Reaction) Changed() bool {
	return r.Before != r.After
}

// React returns the effect set after introducing incoming into current.
//
// Every rule keyed by (E, incoming) for an E in current is collected in table
// order, with guards reading current as it was before anything changed. The
// collected rewrites then run against a working copy: a rewrite whose result is
// already present is skipped, otherwise E is replaced by the result. Finally the
// incoming effect is inserted if absent and there is room. There is a single
// pass; results of one rewrite never trigger further rules.
func (e *Engine) React(current domain.EffectSet, incoming domain.Effect) domain.EffectSet {
	return e.react(current, incoming, nil)
}

// Trace is React with a record of every rule that fired or was blocked
func (e *Engine) Trace(current domain.EffectSet, incoming domain.Effect) Reaction {
	reaction := Reaction{Incoming: incoming, Before: current}
	reaction.After = e.react(current, incoming, &reaction)
	return reaction
}

func (e *Engine) react(current domain.EffectSet, incoming domain.Effect, trace *Reaction) domain.EffectSet {
	if !incoming.Valid() {
		return current
	}

	working := current
	for _, i := range e.byIncoming[incoming] {
		r := e.rules[i]
		if !current.Has(r.Existing) || !r.Guard.Allows(current) {
			continue
		}
		if working.Has(r.Result) {
			if trace != nil {
				trace.Blocked = append(trace.Blocked, r)
			}
			continue
		}
		working = working.Replace(r.Existing, r.Result)
		if trace != nil {
			trace.Fired = append(trace.Fired, r)
		}
	}

	if !working.Has(incoming) && !working.Full() {
		working = working.With(incoming)
		if trace != nil {
			trace.Inserted = true
		}
	}
	return working
}
