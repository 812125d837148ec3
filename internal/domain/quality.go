package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quality is an ordinal tier used for soil and pseudoephedrine. Low is the default.
type Quality uint8

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh

	qualityCount
)

type qualityInfo struct {
	name       string
	soilName   string
	soilCost   int64
	pseudoCost int64
}

var qualityCatalog = [qualityCount]qualityInfo{
	QualityLow:    {name: QualityNameLow, soilName: SoilNameLow, soilCost: 10, pseudoCost: 60},
	QualityMedium: {name: QualityNameMedium, soilName: SoilNameMedium, soilCost: 30, pseudoCost: 80},
	QualityHigh:   {name: QualityNameHigh, soilName: SoilNameHigh, soilCost: 60, pseudoCost: 110},
}

// AllQualities returns every tier from lowest to highest
func AllQualities() []Quality {
	return []Quality{QualityLow, QualityMedium, QualityHigh}
}

// Valid reports whether q is a known tier
func (q Quality) Valid() bool {
	return q < qualityCount
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", uint8(q))
	}
	return qualityCatalog[q].name
}

// SoilName is the in-game name of the soil at this tier
func (q Quality) SoilName() string {
	if !q.Valid() {
		return q.String()
	}
	return qualityCatalog[q].soilName
}

// SoilCost is the price of one bag of soil at this tier
func (q Quality) SoilCost() decimal.Decimal {
	if !q.Valid() {
		return decimal.Zero
	}
	return decimal.NewFromInt(qualityCatalog[q].soilCost)
}

// PseudoCost is the price of one batch of pseudoephedrine at this tier
func (q Quality) PseudoCost() decimal.Decimal {
	if !q.Valid() {
		return decimal.Zero
	}
	return decimal.NewFromInt(qualityCatalog[q].pseudoCost)
}

// MarshalText implements encoding.TextMarshaler
func (q Quality) MarshalText() ([]byte, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuality, uint8(q))
	}
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (q *Quality) UnmarshalText(text []byte) error {
	parsed, err := ParseQuality(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// ParseQuality looks up a tier by name
func ParseQuality(name string) (Quality, error) {
	for i := range qualityCatalog {
		if qualityCatalog[i].name == name {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, name)
}
