package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ingredient is an additive mixed into a product. Each ingredient carries a single
// primary effect and a fixed cost.
type Ingredient uint8

// Ingredients in catalog (cost) order
const (
	IngredientCuke Ingredient = iota
	IngredientBanana
	IngredientParacetamol
	IngredientDonut
	IngredientViagra
	IngredientMouthWash
	IngredientFluMedicine
	IngredientGasoline
	IngredientEnergyDrink
	IngredientMotorOil
	IngredientMegaBean
	IngredientChili
	IngredientBattery
	IngredientIodine
	IngredientAddy
	IngredientHorseSemen

	ingredientCount
)

// NumIngredients is the size of the ingredient catalog
const NumIngredients = int(ingredientCount)

type ingredientInfo struct {
	name    string
	display string
	cost    int64
	effect  Effect
}

var ingredientCatalog = [ingredientCount]ingredientInfo{
	IngredientCuke:        {name: "Cuke", display: "Cuke", cost: 2, effect: EffectEnergizing},
	IngredientBanana:      {name: "Banana", display: "Banana", cost: 2, effect: EffectGingeritis},
	IngredientParacetamol: {name: "Paracetamol", display: "Paracetamol", cost: 3, effect: EffectSneaky},
	IngredientDonut:       {name: "Donut", display: "Donut", cost: 3, effect: EffectCalorieDense},
	IngredientViagra:      {name: "Viagra", display: "Viagra", cost: 4, effect: EffectTropicThunder},
	IngredientMouthWash:   {name: "MouthWash", display: "Mouth Wash", cost: 4, effect: EffectBalding},
	IngredientFluMedicine: {name: "FluMedicine", display: "Flu Medicine", cost: 5, effect: EffectSedating},
	IngredientGasoline:    {name: "Gasoline", display: "Gasoline", cost: 5, effect: EffectToxic},
	IngredientEnergyDrink: {name: "EnergyDrink", display: "Energy Drink", cost: 6, effect: EffectAthletic},
	IngredientMotorOil:    {name: "MotorOil", display: "Motor Oil", cost: 6, effect: EffectSlippery},
	IngredientMegaBean:    {name: "MegaBean", display: "Mega Bean", cost: 7, effect: EffectFoggy},
	IngredientChili:       {name: "Chili", display: "Chili", cost: 7, effect: EffectSpicy},
	IngredientBattery:     {name: "Battery", display: "Battery", cost: 8, effect: EffectBrightEyed},
	IngredientIodine:      {name: "Iodine", display: "Iodine", cost: 8, effect: EffectJennerising},
	IngredientAddy:        {name: "Addy", display: "Addy", cost: 9, effect: EffectThoughtProvoking},
	IngredientHorseSemen:  {name: "HorseSemen", display: "Horse Semen", cost: 9, effect: EffectLongFaced},
}

// AllIngredients returns every ingredient in catalog order
func AllIngredients() []Ingredient {
	out := make([]Ingredient, 0, NumIngredients)
	for i := Ingredient(0); i < ingredientCount; i++ {
		out = append(out, i)
	}
	return out
}

// Valid reports whether i is a catalog ingredient
func (i Ingredient) Valid() bool {
	return i < ingredientCount
}

// String returns the ingredient tag, e.g. "HorseSemen"
func (i Ingredient) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Ingredient(%d)", uint8(i))
	}
	return ingredientCatalog[i].name
}

// DisplayName returns the spaced form shown to players, e.g. "Horse Semen"
func (i Ingredient) DisplayName() string {
	if !i.Valid() {
		return i.String()
	}
	return ingredientCatalog[i].display
}

// Cost is the price of one unit of the ingredient
func (i Ingredient) Cost() decimal.Decimal {
	if !i.Valid() {
		return decimal.Zero
	}
	return decimal.NewFromInt(ingredientCatalog[i].cost)
}

// Effect is the primary effect the ingredient introduces
func (i Ingredient) Effect() Effect {
	if !i.Valid() {
		return effectCount
	}
	return ingredientCatalog[i].effect
}

// MarshalText implements encoding.TextMarshaler
func (i Ingredient) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIngredient, uint8(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Ingredient) UnmarshalText(text []byte) error {
	parsed, err := ParseIngredient(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ParseIngredient looks up an ingredient by its exact tag
func ParseIngredient(tag string) (Ingredient, error) {
	for i := range ingredientCatalog {
		if ingredientCatalog[i].name == tag {
			return Ingredient(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIngredient, tag)
}
