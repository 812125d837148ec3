package economy

import "github.com/osse101/MixCalc_Go/internal/domain"

// Packaging sizes in units per package
const (
	UnitsPerBaggie = 1
	UnitsPerJar    = 5
	UnitsPerBrick  = 20
)

// Packaging names
const (
	PackageBaggie = "Baggie"
	PackageJar    = "Jar"
	PackageBrick  = "Brick"
)

// Addictiveness is reported as a whole percentage
const (
	MinAddictiveness = 0
	MaxAddictiveness = 100
)

// DisplayPlaces is the number of decimal places money is reported with
const DisplayPlaces = 2

// Expense line kinds
const (
	ExpenseProduct    = "product"
	ExpenseSoil       = "soil"
	ExpenseAdditive   = "additive"
	ExpenseIngredient = "ingredient"
)

// yields by family, indexed [usePot][hasPGR]
var yieldTable = map[domain.ProductFamily][2][2]int{
	domain.FamilyMarijuana: {{8, 12}, {12, 16}},
	domain.FamilyCocaine:   {{6, 11}, {9, 16}},
	domain.FamilyMeth:      {{10, 10}, {10, 10}},
}

// fallbackYield keeps per-unit division total for products outside the catalog
const fallbackYield = 1
