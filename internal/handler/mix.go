package handler

import (
	"net/http"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/logger"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
)

// StateBody carries the growing choices of a mix request. Empty qualities mean Low.
type StateBody struct {
	Additives []string `json:"additives" validate:"max=3,dive,required,catalogname,max=64"`
	Soil      string   `json:"soil" validate:"omitempty,catalogname,max=64"`
	Pseudo    string   `json:"pseudo" validate:"omitempty,catalogname,max=64"`
	UsePot    bool     `json:"use_pot"`
}

// MixBody asks for a product mixed with ingredients in order. Every name goes
// through the naming resolver, so display names and aliases are accepted.
type MixBody struct {
	Product     string    `json:"product" validate:"required,catalogname,max=64"`
	Ingredients []string  `json:"ingredients" validate:"max=64,dive,required,catalogname,max=64"`
	Name        string    `json:"name" validate:"omitempty,catalogname,max=64"`
	State       StateBody `json:"state"`
}

// MixHandler serves mix evaluation
type MixHandler struct {
	svc   mixing.Service
	names naming.Resolver
}

// NewMixHandler creates a new mix handler
func NewMixHandler(svc mixing.Service, names naming.Resolver) *MixHandler {
	return &MixHandler{svc: svc, names: names}
}

// HandleMix builds and prices a mix
// @Summary Evaluate a mix
// @Description Applies ingredients in order to a base product and prices the result
// @Tags mix
// @Accept json
// @Produce json
// @Param request body MixBody true "Mix request"
// @Success 200 {object} mixing.MixReport
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mix [post]
func (h *MixHandler) HandleMix(w http.ResponseWriter, r *http.Request) {
	var body MixBody
	if err := DecodeAndValidateRequest(r, w, &body, "Mix"); err != nil {
		return
	}

	report, err := buildReport(r, h.svc, h.names, body)
	if err != nil {
		respondServiceError(w, r, ErrMsgMixFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Mix evaluated",
		"key", report.Key,
		"effects", report.Sellable.Effects.Len(),
		"sell_price", report.Economics.SellPrice)

	respondJSON(w, http.StatusOK, report)
}

// buildReport resolves the names in body and runs the mix through svc
func buildReport(r *http.Request, svc mixing.Service, names naming.Resolver, body MixBody) (*mixing.MixReport, error) {
	req, err := ResolveMixRequest(names, body)
	if err != nil {
		return nil, err
	}
	return svc.Mix(r.Context(), req)
}

// ResolveMixRequest turns the names in body into catalog values
func ResolveMixRequest(names naming.Resolver, body MixBody) (mixing.MixRequest, error) {
	product, err := names.ResolveProduct(body.Product)
	if err != nil {
		return mixing.MixRequest{}, err
	}

	ingredients := make([]domain.Ingredient, 0, len(body.Ingredients))
	for _, name := range body.Ingredients {
		ing, err := names.ResolveIngredient(name)
		if err != nil {
			return mixing.MixRequest{}, err
		}
		ingredients = append(ingredients, ing)
	}

	state, err := resolveState(names, body.State)
	if err != nil {
		return mixing.MixRequest{}, err
	}

	return mixing.MixRequest{
		Product:     product,
		Ingredients: ingredients,
		Name:        body.Name,
		State:       state,
	}, nil
}

func resolveState(names naming.Resolver, body StateBody) (domain.MixState, error) {
	state := domain.DefaultMixState()
	state.UsePot = body.UsePot

	for _, name := range body.Additives {
		a, err := names.ResolveAdditive(name)
		if err != nil {
			return state, err
		}
		state = state.WithAdditive(a)
	}

	if body.Soil != "" {
		q, err := names.ResolveQuality(body.Soil)
		if err != nil {
			return state, err
		}
		state.SoilQuality = q
	}

	if body.Pseudo != "" {
		q, err := names.ResolveQuality(body.Pseudo)
		if err != nil {
			return state, err
		}
		state.PseudoQuality = q
	}

	return state, nil
}
