package economy

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// RawSellPrice is the unrounded sell price: base sell price scaled by one plus
// the sum of the effect multipliers
func RawSellPrice(mix domain.Sellable) decimal.Decimal {
	factor := one
	for _, e := range mix.Effects.Effects() {
		factor = factor.Add(e.Multiplier())
	}
	return mix.Base.SellPrice().Mul(factor)
}

// SellPrice is RawSellPrice rounded to the nearest whole unit, ties to even
func SellPrice(mix domain.Sellable) int {
	return int(RawSellPrice(mix).RoundBank(0).IntPart())
}

// Addictiveness is the whole-percent addictiveness of the mix, clamped to 0..100.
// An unmixed plant reports only its effect contributions.
func Addictiveness(mix domain.Sellable) int {
	total := mix.Base.Addictiveness()
	if mix.Base.IsPlant() && !mix.IsMixed() {
		total = decimal.Zero
	}
	for _, e := range mix.Effects.Effects() {
		total = total.Add(e.Addictiveness())
	}

	pct := total.Mul(hundred).Floor().IntPart()
	switch {
	case pct < MinAddictiveness:
		return MinAddictiveness
	case pct > MaxAddictiveness:
		return MaxAddictiveness
	default:
		return int(pct)
	}
}

// YieldAmount is how many units one batch of the base product produces
func YieldAmount(mix domain.Sellable, state domain.MixState) int {
	return yieldFor(mix.Base, state)
}

func yieldFor(p domain.Product, state domain.MixState) int {
	row, ok := yieldTable[p.Family()]
	if !ok || !p.Valid() {
		return fallbackYield
	}
	return row[boolIndex(state.UsePot)][boolIndex(state.HasPGR())]
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// UnitPrice is the base product cost of one unit
func UnitPrice(mix domain.Sellable, state domain.MixState) decimal.Decimal {
	return perUnit(mix.Base.BaseCost(state), mix, state)
}

// Price is the full cost of one unit: its share of the base product, soil and
// additives, plus every recorded ingredient
func Price(mix domain.Sellable, state domain.MixState) decimal.Decimal {
	price := UnitPrice(mix, state)
	if growsInSoil(mix.Base) {
		grow := state.SoilQuality.SoilCost().
			Add(decimal.NewFromInt(int64(domain.AdditiveCost * state.Additives.Len())))
		price = price.Add(perUnit(grow, mix, state))
	}
	for _, ing := range mix.Ingredients {
		price = price.Add(ing.Cost())
	}
	return price
}

// Margin is the rounded sell price minus the unit price of the mix
func Margin(mix domain.Sellable, state domain.MixState) decimal.Decimal {
	return decimal.NewFromInt(int64(SellPrice(mix))).Sub(Price(mix, state))
}

func perUnit(amount decimal.Decimal, mix domain.Sellable, state domain.MixState) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(int64(YieldAmount(mix, state))))
}

// growsInSoil reports whether soil and additives are charged for the product
func growsInSoil(p domain.Product) bool {
	return p.Family() == domain.FamilyMarijuana || p.Family() == domain.FamilyCocaine
}
