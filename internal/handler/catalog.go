package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/MixCalc_Go/internal/domain"
)

// EffectView is an effect as listed by the catalog endpoint
type EffectView struct {
	Tag           domain.Effect     `json:"tag"`
	Multiplier    decimal.Decimal   `json:"multiplier"`
	Addictiveness decimal.Decimal   `json:"addictiveness"`
	Meta          domain.EffectMeta `json:"meta"`
}

// IngredientView is an ingredient as listed by the catalog endpoint
type IngredientView struct {
	Tag    domain.Ingredient `json:"tag"`
	Name   string            `json:"name"`
	Cost   decimal.Decimal   `json:"cost"`
	Effect domain.Effect     `json:"effect"`
}

// ProductView is a base product as listed by the catalog endpoint
type ProductView struct {
	Tag             domain.Product   `json:"tag"`
	Name            string           `json:"name"`
	Family          string           `json:"family"`
	StartingEffects domain.EffectSet `json:"starting_effects"`
	BaseCost        decimal.Decimal  `json:"base_cost"`
	SellPrice       decimal.Decimal  `json:"sell_price"`
	Addictiveness   decimal.Decimal  `json:"addictiveness"`
}

// QualityView is a quality tier with the soil and pseudo it buys
type QualityView struct {
	Tag        domain.Quality  `json:"tag"`
	SoilName   string          `json:"soil_name"`
	SoilCost   decimal.Decimal `json:"soil_cost"`
	PseudoCost decimal.Decimal `json:"pseudo_cost"`
}

// HandleGetEffects lists every effect with its pricing data and map placement
// @Summary List effects
// @Tags catalog
// @Produce json
// @Success 200 {array} EffectView
// @Router /api/v1/catalog/effects [get]
func HandleGetEffects() http.HandlerFunc {
	effects := domain.AllEffects()
	views := make([]EffectView, 0, len(effects))
	for _, e := range effects {
		views = append(views, EffectView{
			Tag:           e,
			Multiplier:    e.Multiplier(),
			Addictiveness: e.Addictiveness(),
			Meta:          e.Meta(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetIngredients lists every ingredient
// @Summary List ingredients
// @Tags catalog
// @Produce json
// @Success 200 {array} IngredientView
// @Router /api/v1/catalog/ingredients [get]
func HandleGetIngredients() http.HandlerFunc {
	ingredients := domain.AllIngredients()
	views := make([]IngredientView, 0, len(ingredients))
	for _, ing := range ingredients {
		views = append(views, IngredientView{
			Tag:    ing,
			Name:   ing.DisplayName(),
			Cost:   ing.Cost(),
			Effect: ing.Effect(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetProducts lists every base product. Base costs assume the default mix state.
// @Summary List products
// @Tags catalog
// @Produce json
// @Success 200 {array} ProductView
// @Router /api/v1/catalog/products [get]
func HandleGetProducts() http.HandlerFunc {
	products := domain.AllProducts()
	state := domain.DefaultMixState()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Tag:             p,
			Name:            p.DefaultName(),
			Family:          p.Family().String(),
			StartingEffects: p.StartingEffects(),
			BaseCost:        p.BaseCost(state),
			SellPrice:       p.SellPrice(),
			Addictiveness:   p.Addictiveness(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetQualities lists the quality tiers
// @Summary List quality tiers
// @Tags catalog
// @Produce json
// @Success 200 {array} QualityView
// @Router /api/v1/catalog/qualities [get]
func HandleGetQualities() http.HandlerFunc {
	qualities := domain.AllQualities()
	views := make([]QualityView, 0, len(qualities))
	for _, q := range qualities {
		views = append(views, QualityView{
			Tag:        q,
			SoilName:   q.SoilName(),
			SoilCost:   q.SoilCost(),
			PseudoCost: q.PseudoCost(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, views)
	}
}
