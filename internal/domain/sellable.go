package domain

import (
	"slices"
	"strings"
)

// Sellable is a mix: a base product plus the ingredients that changed it and the
// effects it ended up with. Sellables are values; operations that change a mix
// return a new one.
type Sellable struct {
	Base        Product      `json:"base"`
	Name        string       `json:"name"`
	Effects     EffectSet    `json:"effects"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Key identifies a mix by its base product and ordered ingredients,
// e.g. "Marijuana(Calming)AddyViagra". The name never takes part.
func (s Sellable) Key() string {
	var sb strings.Builder
	sb.WriteString(s.Base.String())
	for _, ing := range s.Ingredients {
		sb.WriteString(ing.String())
	}
	return sb.String()
}

// Clone returns a copy that shares no memory with s
func (s Sellable) Clone() Sellable {
	s.Ingredients = slices.Clone(s.Ingredients)
	return s
}

// Equal reports whether every field of s and other match
func (s Sellable) Equal(other Sellable) bool {
	return s.Base == other.Base &&
		s.Name == other.Name &&
		s.Effects == other.Effects &&
		slices.Equal(s.Ingredients, other.Ingredients)
}

// IsMixed reports whether any ingredient has been applied
func (s Sellable) IsMixed() bool {
	return len(s.Ingredients) > 0
}
