package domain

// MixState holds the growing and preparation choices that affect cost and yield
// but never the effects of a mix. The zero value is the default state: no
// additives, low quality soil and pseudo, grown in a tent.
type MixState struct {
	Additives     AdditiveSet `json:"additives"`
	SoilQuality   Quality     `json:"soil_quality"`
	PseudoQuality Quality     `json:"pseudo_quality"`
	UsePot        bool        `json:"use_pot"`
}

// DefaultMixState returns the default mix state
func DefaultMixState() MixState {
	return MixState{}
}

// HasPGR reports whether the PGR additive is flagged
func (m MixState) HasPGR() bool {
	return m.Additives.Has(AdditivePGR)
}

// WithAdditive returns a copy with a flagged
func (m MixState) WithAdditive(a Additive) MixState {
	m.Additives = m.Additives.With(a)
	return m
}

// WithoutAdditive returns a copy with a cleared
func (m MixState) WithoutAdditive(a Additive) MixState {
	m.Additives = m.Additives.Without(a)
	return m
}

// ToggleAdditive returns a copy with the flag for a flipped
func (m MixState) ToggleAdditive(a Additive) MixState {
	m.Additives = m.Additives.Toggle(a)
	return m
}
