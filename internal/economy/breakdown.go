package economy

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

// ExpenseLine is one contribution to the unit price
type ExpenseLine struct {
	Kind    string          `json:"kind"`
	Label   string          `json:"label"`
	Total   decimal.Decimal `json:"total"`
	PerUnit decimal.Decimal `json:"per_unit"`
}

// Breakdown lists every expense of a mix. The per-unit amounts sum to Price
// up to division precision.
type Breakdown struct {
	Yield int           `json:"yield"`
	Lines []ExpenseLine `json:"lines"`
}

// Expenses itemizes the cost of a mix: the base product, soil and flagged
// additives (never for meth) shared across the yield, then each ingredient
func Expenses(mix domain.Sellable, state domain.MixState) Breakdown {
	b := Breakdown{Yield: YieldAmount(mix, state)}

	base := mix.Base.BaseCost(state)
	b.add(ExpenseProduct, mix.Base.DefaultName(), base, perUnit(base, mix, state))

	if growsInSoil(mix.Base) {
		soil := state.SoilQuality.SoilCost()
		b.add(ExpenseSoil, state.SoilQuality.SoilName(), soil, perUnit(soil, mix, state))

		cost := decimal.NewFromInt(domain.AdditiveCost)
		for _, a := range state.Additives.Additives() {
			b.add(ExpenseAdditive, a.String(), cost, perUnit(cost, mix, state))
		}
	}

	for _, ing := range mix.Ingredients {
		b.add(ExpenseIngredient, ing.DisplayName(), ing.Cost(), ing.Cost())
	}
	return b
}

func (b *Breakdown) add(kind, label string, total, unit decimal.Decimal) {
	b.Lines = append(b.Lines, ExpenseLine{Kind: kind, Label: label, Total: total, PerUnit: unit})
}

// Cause is the share of the sell price multiplier contributed by one effect
type Cause struct {
	Effect     domain.Effect   `json:"effect"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Causes lists each effect of the mix with its multiplier, in catalog order
func Causes(mix domain.Sellable) []Cause {
	effects := mix.Effects.Effects()
	out := make([]Cause, 0, len(effects))
	for _, e := range effects {
		out = append(out, Cause{Effect: e, Multiplier: e.Multiplier()})
	}
	return out
}

// PackagedPrice is the sell price of a package of units
type PackagedPrice struct {
	Package string `json:"package"`
	Units   int    `json:"units"`
	Price   int    `json:"price"`
}

// PackagedSellPrices prices a baggie, jar and brick of the mix
func PackagedSellPrices(mix domain.Sellable) []PackagedPrice {
	unit := SellPrice(mix)
	return []PackagedPrice{
		{Package: PackageBaggie, Units: UnitsPerBaggie, Price: unit * UnitsPerBaggie},
		{Package: PackageJar, Units: UnitsPerJar, Price: unit * UnitsPerJar},
		{Package: PackageBrick, Units: UnitsPerBrick, Price: unit * UnitsPerBrick},
	}
}
