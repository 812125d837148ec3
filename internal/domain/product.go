package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductFamily groups products that share yield and cost rules
type ProductFamily uint8

const (
	FamilyMarijuana ProductFamily = iota + 1
	FamilyMeth
	FamilyCocaine
)

func (f ProductFamily) String() string {
	switch f {
	case FamilyMarijuana:
		return FamilyNameMarijuana
	case FamilyMeth:
		return FamilyNameMeth
	case FamilyCocaine:
		return FamilyNameCocaine
	default:
		return fmt.Sprintf("ProductFamily(%d)", uint8(f))
	}
}

// Product is a base product that mixes start from. Plant products carry the
// effect they start with. Products can only be obtained from the exported values
// below; the zero value is not a valid product.
type Product struct {
	family ProductFamily
	strain Effect
}

// The closed set of base products
var (
	OGKush           = Product{family: FamilyMarijuana, strain: EffectCalming}
	SourDiesel       = Product{family: FamilyMarijuana, strain: EffectRefreshing}
	GreenCrack       = Product{family: FamilyMarijuana, strain: EffectEnergizing}
	GranddaddyPurple = Product{family: FamilyMarijuana, strain: EffectSedating}
	Meth             = Product{family: FamilyMeth}
	Cocaine          = Product{family: FamilyCocaine}
)

type productInfo struct {
	defaultName   string
	baseCost      int64
	sellPrice     int64
	addictiveness decimal.Decimal
}

var productCatalog = map[Product]productInfo{
	OGKush:           {defaultName: StrainOGKush, baseCost: 30, sellPrice: 35, addictiveness: hundredths(5)},
	SourDiesel:       {defaultName: StrainSourDiesel, baseCost: 35, sellPrice: 35, addictiveness: hundredths(5)},
	GreenCrack:       {defaultName: StrainGreenCrack, baseCost: 40, sellPrice: 35, addictiveness: hundredths(5)},
	GranddaddyPurple: {defaultName: StrainGranddaddyPurple, baseCost: 45, sellPrice: 35, addictiveness: hundredths(5)},
	Meth:             {defaultName: FamilyNameMeth, sellPrice: 70, addictiveness: hundredths(60)},
	Cocaine:          {defaultName: FamilyNameCocaine, baseCost: 80, sellPrice: 150, addictiveness: hundredths(40)},
}

// AllProducts returns every product in catalog order
func AllProducts() []Product {
	return []Product{OGKush, SourDiesel, GreenCrack, GranddaddyPurple, Meth, Cocaine}
}

// Marijuana returns the plant product starting with the given effect
func Marijuana(strain Effect) (Product, bool) {
	p := Product{family: FamilyMarijuana, strain: strain}
	return p, p.Valid()
}

// Valid reports whether p is one of the catalog products
func (p Product) Valid() bool {
	_, ok := productCatalog[p]
	return ok
}

// Family returns the product family
func (p Product) Family() ProductFamily {
	return p.family
}

// IsPlant reports whether p is grown from a plant strain
func (p Product) IsPlant() bool {
	return p.family == FamilyMarijuana
}

// Strain returns the starting effect of a plant product
func (p Product) Strain() (Effect, bool) {
	if !p.IsPlant() || !p.Valid() {
		return 0, false
	}
	return p.strain, true
}

// String returns the identity tag, e.g. "Marijuana(Calming)" or "Meth"
func (p Product) String() string {
	if p.IsPlant() {
		return fmt.Sprintf("%s(%s)", FamilyNameMarijuana, p.strain)
	}
	return p.family.String()
}

// DefaultName is the player-facing name a fresh mix starts with
func (p Product) DefaultName() string {
	if info, ok := productCatalog[p]; ok {
		return info.defaultName
	}
	return p.String()
}

// StartingEffects are the effects an unmixed product carries
func (p Product) StartingEffects() EffectSet {
	if strain, ok := p.Strain(); ok {
		return NewEffectSet(strain)
	}
	return 0
}

// BaseCost is the cost of the raw product. Meth cost depends on the pseudo tier.
func (p Product) BaseCost(state MixState) decimal.Decimal {
	if p.family == FamilyMeth {
		return state.PseudoQuality.PseudoCost()
	}
	return decimal.NewFromInt(productCatalog[p].baseCost)
}

// SellPrice is the unmixed sell price the effect multipliers scale
func (p Product) SellPrice() decimal.Decimal {
	return decimal.NewFromInt(productCatalog[p].sellPrice)
}

// Addictiveness is the base addictiveness fraction of the product
func (p Product) Addictiveness() decimal.Decimal {
	if info, ok := productCatalog[p]; ok {
		return info.addictiveness
	}
	return decimal.Zero
}

// MarshalText implements encoding.TextMarshaler
func (p Product) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Product) UnmarshalText(text []byte) error {
	parsed, err := ParseProduct(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseProduct looks up a product by its identity tag
func ParseProduct(tag string) (Product, error) {
	for _, p := range AllProducts() {
		if p.String() == tag {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, tag)
}
