package domain

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// EffectSet is an unordered set of at most MaxEffects effects.
// It is an immutable value: every operation returns a new set, and two sets
// holding the same effects compare equal with ==.
type EffectSet uint64

// NewEffectSet builds a set by adding effects in order, respecting capacity
func NewEffectSet(effects ...Effect) EffectSet {
	var s EffectSet
	for _, e := range effects {
		s = s.With(e)
	}
	return s
}

func bit(e Effect) EffectSet {
	return EffectSet(1) << e
}

// Has reports whether e is in the set
func (s EffectSet) Has(e Effect) bool {
	return e.Valid() && s&bit(e) != 0
}

// Len returns the number of effects in the set
func (s EffectSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether the set has no effects
func (s EffectSet) Empty() bool {
	return s == 0
}

// Full reports whether the set is at capacity
func (s EffectSet) Full() bool {
	return s.Len() >= MaxEffects
}

// With returns the set plus e. Adding a present effect, an unknown effect or
// adding to a full set returns s unchanged.
func (s EffectSet) With(e Effect) EffectSet {
	if !e.Valid() || s.Has(e) || s.Full() {
		return s
	}
	return s | bit(e)
}

// Without returns the set minus e
func (s EffectSet) Without(e Effect) EffectSet {
	if !e.Valid() {
		return s
	}
	return s &^ bit(e)
}

// Replace swaps from for to, bypassing the capacity check since the size
// never grows. Callers must ensure from is present and to is absent.
func (s EffectSet) Replace(from, to Effect) EffectSet {
	return s.Without(from) | bit(to)
}

// Effects lists the members in catalog order
func (s EffectSet) Effects() []Effect {
	out := make([]Effect, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, Effect(bits.TrailingZeros64(rest)))
	}
	return out
}

// String renders the set as "{Calming, ThoughtProvoking}"
func (s EffectSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range s.Effects() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON encodes the set as an array of effect tags in catalog order
func (s EffectSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Effects())
}

// UnmarshalJSON decodes an array of effect tags
func (s *EffectSet) UnmarshalJSON(data []byte) error {
	var effects []Effect
	if err := json.Unmarshal(data, &effects); err != nil {
		return err
	}
	*s = NewEffectSet(effects...)
	return nil
}
