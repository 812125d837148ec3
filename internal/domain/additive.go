package domain

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// Additive is a one-time growing additive applied to a plant or coca pot
type Additive uint8

const (
	AdditivePGR Additive = iota
	AdditiveFertilizer
	AdditiveSpeedGrow

	additiveCount
)

var additiveNames = [additiveCount]string{
	AdditivePGR:        AdditiveNamePGR,
	AdditiveFertilizer: AdditiveNameFertilizer,
	AdditiveSpeedGrow:  AdditiveNameSpeedGrow,
}

// AllAdditives returns every additive in catalog order
func AllAdditives() []Additive {
	return []Additive{AdditivePGR, AdditiveFertilizer, AdditiveSpeedGrow}
}

// Valid reports whether a is a known additive
func (a Additive) Valid() bool {
	return a < additiveCount
}

func (a Additive) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Additive(%d)", uint8(a))
	}
	return additiveNames[a]
}

// MarshalText implements encoding.TextMarshaler
func (a Additive) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAdditive, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Additive) UnmarshalText(text []byte) error {
	parsed, err := ParseAdditive(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAdditive looks up an additive by name
func ParseAdditive(name string) (Additive, error) {
	for i, n := range additiveNames {
		if n == name {
			return Additive(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAdditive, name)
}

// AdditiveSet holds at-most-once additive flags
type AdditiveSet uint8

// NewAdditiveSet flags every given additive
func NewAdditiveSet(additives ...Additive) AdditiveSet {
	var s AdditiveSet
	for _, a := range additives {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is flagged
func (s AdditiveSet) Has(a Additive) bool {
	return a.Valid() && s&(1<<a) != 0
}

// With returns the set with a flagged
func (s AdditiveSet) With(a Additive) AdditiveSet {
	if !a.Valid() {
		return s
	}
	return s | 1<<a
}

// Without returns the set with a cleared
func (s AdditiveSet) Without(a Additive) AdditiveSet {
	if !a.Valid() {
		return s
	}
	return s &^ (1 << a)
}

// Toggle flips the flag for a
func (s AdditiveSet) Toggle(a Additive) AdditiveSet {
	if s.Has(a) {
		return s.Without(a)
	}
	return s.With(a)
}

// Len returns the number of flagged additives
func (s AdditiveSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Additives lists the flagged additives in catalog order
func (s AdditiveSet) Additives() []Additive {
	out := make([]Additive, 0, s.Len())
	for _, a := range AllAdditives() {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// MarshalJSON encodes the set as an array of additive names
func (s AdditiveSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Additives())
}

// UnmarshalJSON decodes an array of additive names
func (s *AdditiveSet) UnmarshalJSON(data []byte) error {
	var additives []Additive
	if err := json.Unmarshal(data, &additives); err != nil {
		return err
	}
	*s = NewAdditiveSet(additives...)
	return nil
}
