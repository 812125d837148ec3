package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Effect is a trait carried by a mix. Effects are a closed set; the numeric value
// doubles as the bit position inside an EffectSet.
type Effect uint8

// Effects in catalog (alphabetical) order
const (
	EffectAntiGravity Effect = iota
	EffectAthletic
	EffectBalding
	EffectBrightEyed
	EffectCalming
	EffectCalorieDense
	EffectCyclopean
	EffectDisorienting
	EffectElectrifying
	EffectEnergizing
	EffectEuphoric
	EffectExplosive
	EffectFocused
	EffectFoggy
	EffectGingeritis
	EffectGlowing
	EffectJennerising
	EffectLaxative
	EffectLethal
	EffectLongFaced
	EffectMunchies
	EffectParanoia
	EffectRefreshing
	EffectSchizophrenic
	EffectSedating
	EffectSeizureInducing
	EffectShrinking
	EffectSlippery
	EffectSmelly
	EffectSneaky
	EffectSpicy
	EffectThoughtProvoking
	EffectToxic
	EffectTropicThunder
	EffectZombifying

	effectCount
)

// NumEffects is the size of the effect catalog
const NumEffects = int(effectCount)

type effectInfo struct {
	name          string
	multiplier    decimal.Decimal
	addictiveness decimal.Decimal
	color         string
}

// effectCatalog holds the fixed economic data of every effect.
// Multipliers are hundredths, addictiveness contributions are thousandths.
var effectCatalog = [effectCount]effectInfo{
	EffectAntiGravity:      {name: "AntiGravity", multiplier: hundredths(54), addictiveness: thousandths(611), color: "#235BCD"},
	EffectAthletic:         {name: "Athletic", multiplier: hundredths(32), addictiveness: thousandths(607), color: "#75C8FD"},
	EffectBalding:          {name: "Balding", multiplier: hundredths(30), addictiveness: thousandths(0), color: "#C79232"},
	EffectBrightEyed:       {name: "BrightEyed", multiplier: hundredths(40), addictiveness: thousandths(200), color: "#BEF7FD"},
	EffectCalming:          {name: "Calming", multiplier: hundredths(10), addictiveness: thousandths(0), color: "#FED09B"},
	EffectCalorieDense:     {name: "CalorieDense", multiplier: hundredths(28), addictiveness: thousandths(100), color: "#FE84F4"},
	EffectCyclopean:        {name: "Cyclopean", multiplier: hundredths(56), addictiveness: thousandths(100), color: "#FEC174"},
	EffectDisorienting:     {name: "Disorienting", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#FE7551"},
	EffectElectrifying:     {name: "Electrifying", multiplier: hundredths(50), addictiveness: thousandths(235), color: "#55C8FD"},
	EffectEnergizing:       {name: "Energizing", multiplier: hundredths(22), addictiveness: thousandths(340), color: "#9AFE6D"},
	EffectEuphoric:         {name: "Euphoric", multiplier: hundredths(18), addictiveness: thousandths(235), color: "#FEEA74"},
	EffectExplosive:        {name: "Explosive", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#FE4B40"},
	EffectFocused:          {name: "Focused", multiplier: hundredths(16), addictiveness: thousandths(104), color: "#75F1FD"},
	EffectFoggy:            {name: "Foggy", multiplier: hundredths(36), addictiveness: thousandths(100), color: "#B0B0AF"},
	EffectGingeritis:       {name: "Gingeritis", multiplier: hundredths(20), addictiveness: thousandths(0), color: "#FE8829"},
	EffectGlowing:          {name: "Glowing", multiplier: hundredths(48), addictiveness: thousandths(472), color: "#85E459"},
	EffectJennerising:      {name: "Jennerising", multiplier: hundredths(42), addictiveness: thousandths(343), color: "#FE8DF9"},
	EffectLaxative:         {name: "Laxative", multiplier: hundredths(0), addictiveness: thousandths(100), color: "#763C25"},
	EffectLethal:           {name: "Lethal", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#A11E1E"},
	EffectLongFaced:        {name: "LongFaced", multiplier: hundredths(52), addictiveness: thousandths(607), color: "#FED961"},
	EffectMunchies:         {name: "Munchies", multiplier: hundredths(12), addictiveness: thousandths(96), color: "#C96E57"},
	EffectParanoia:         {name: "Paranoia", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#C46762"},
	EffectRefreshing:       {name: "Refreshing", multiplier: hundredths(14), addictiveness: thousandths(104), color: "#B2FE98"},
	EffectSchizophrenic:    {name: "Schizophrenic", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#645AFD"},
	EffectSedating:         {name: "Sedating", multiplier: hundredths(26), addictiveness: thousandths(0), color: "#6B5FD8"},
	EffectSeizureInducing:  {name: "SeizureInducing", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#FEE900"},
	EffectShrinking:        {name: "Shrinking", multiplier: hundredths(60), addictiveness: thousandths(336), color: "#B6FEDA"},
	EffectSlippery:         {name: "Slippery", multiplier: hundredths(34), addictiveness: thousandths(309), color: "#A2DFFD"},
	EffectSmelly:           {name: "Smelly", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#7DBC31"},
	EffectSneaky:           {name: "Sneaky", multiplier: hundredths(24), addictiveness: thousandths(327), color: "#7B7B7B"},
	EffectSpicy:            {name: "Spicy", multiplier: hundredths(38), addictiveness: thousandths(665), color: "#FE6B4C"},
	EffectThoughtProvoking: {name: "ThoughtProvoking", multiplier: hundredths(44), addictiveness: thousandths(370), color: "#FEA0CB"},
	EffectToxic:            {name: "Toxic", multiplier: hundredths(0), addictiveness: thousandths(0), color: "#5F9A31"},
	EffectTropicThunder:    {name: "TropicThunder", multiplier: hundredths(46), addictiveness: thousandths(803), color: "#FE9F47"},
	EffectZombifying:       {name: "Zombifying", multiplier: hundredths(58), addictiveness: thousandths(598), color: "#71AB5D"},
}

// effectMeta is derived once from the catalog at init
var effectMeta [effectCount]EffectMeta

func init() {
	for i := range effectCatalog {
		effectMeta[i] = layoutEffect(Effect(i))
	}
}

func hundredths(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}

func thousandths(n int64) decimal.Decimal {
	return decimal.New(n, -3)
}

// AllEffects returns every effect in catalog order
func AllEffects() []Effect {
	out := make([]Effect, 0, NumEffects)
	for i := Effect(0); i < effectCount; i++ {
		out = append(out, i)
	}
	return out
}

// Valid reports whether e is a catalog effect
func (e Effect) Valid() bool {
	return e < effectCount
}

// String returns the effect tag, e.g. "ThoughtProvoking"
func (e Effect) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Effect(%d)", uint8(e))
	}
	return effectCatalog[e].name
}

// Multiplier is the fraction this effect adds to the base sell price
func (e Effect) Multiplier() decimal.Decimal {
	if !e.Valid() {
		return decimal.Zero
	}
	return effectCatalog[e].multiplier
}

// Addictiveness is the fraction this effect adds to the addictiveness score
func (e Effect) Addictiveness() decimal.Decimal {
	if !e.Valid() {
		return decimal.Zero
	}
	return effectCatalog[e].addictiveness
}

// Meta returns the display-only placement of the effect on the mix map
func (e Effect) Meta() EffectMeta {
	if !e.Valid() {
		return EffectMeta{}
	}
	return effectMeta[e]
}

// MarshalText implements encoding.TextMarshaler
func (e Effect) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEffect, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Effect) UnmarshalText(text []byte) error {
	parsed, err := ParseEffect(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEffect looks up an effect by its exact tag
func ParseEffect(tag string) (Effect, error) {
	for i := range effectCatalog {
		if effectCatalog[i].name == tag {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, tag)
}

// EffectMeta is display-only metadata for drawing an effect on the mix map.
// Reaction and pricing logic never read it.
type EffectMeta struct {
	Direction Vector  `json:"direction"`
	Magnitude float64 `json:"magnitude"`
	Color     string  `json:"color"`
}

// Vector is a 2D direction on the mix map
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// layoutEffect spreads effects evenly around the map in catalog order, pushing
// higher-value effects further from the centre.
func layoutEffect(e Effect) EffectMeta {
	angle := 2 * math.Pi * float64(e) / float64(effectCount)
	mult, _ := effectCatalog[e].multiplier.Float64()
	return EffectMeta{
		Direction: Vector{
			X: roundTo(math.Cos(angle), metaPrecision),
			Y: roundTo(math.Sin(angle), metaPrecision),
		},
		Magnitude: roundTo(baseMagnitude+mult*magnitudeScale, metaPrecision),
		Color:     effectCatalog[e].color,
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

const (
	baseMagnitude  = 1.0
	magnitudeScale = 2.0
	metaPrecision  = 4
)
