package economy

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

// Report gathers every calculator result for one mix and state. Money amounts
// are rounded to DisplayPlaces.
type Report struct {
	SellPrice     int             `json:"sell_price"`
	Packaged      []PackagedPrice `json:"packaged"`
	Addictiveness int             `json:"addictiveness"`
	Yield         int             `json:"yield"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Price         decimal.Decimal `json:"price"`
	Margin        decimal.Decimal `json:"margin"`
	Expenses      []ExpenseLine   `json:"expenses"`
	Causes        []Cause         `json:"causes"`
}

// Evaluate runs every calculator over the mix
func Evaluate(mix domain.Sellable, state domain.MixState) Report {
	breakdown := Expenses(mix, state)
	lines := make([]ExpenseLine, 0, len(breakdown.Lines))
	for _, line := range breakdown.Lines {
		line.Total = line.Total.Round(DisplayPlaces)
		line.PerUnit = line.PerUnit.Round(DisplayPlaces)
		lines = append(lines, line)
	}

	return Report{
		SellPrice:     SellPrice(mix),
		Packaged:      PackagedSellPrices(mix),
		Addictiveness: Addictiveness(mix),
		Yield:         breakdown.Yield,
		UnitPrice:     UnitPrice(mix, state).Round(DisplayPlaces),
		Price:         Price(mix, state).Round(DisplayPlaces),
		Margin:        Margin(mix, state).Round(DisplayPlaces),
		Expenses:      lines,
		Causes:        Causes(mix),
	}
}
