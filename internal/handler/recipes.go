package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/logger"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
	"github.com/osse101/MixCalc_Go/internal/recipe"
)

// RecipeResponse is a saved recipe with a confirmation message
type RecipeResponse struct {
	Message string        `json:"message"`
	Recipe  recipe.Recipe `json:"recipe"`
}

// ToggleResponse reports where a toggled recipe ended up
type ToggleResponse struct {
	Key   string `json:"key"`
	Saved bool   `json:"saved"`
}

// RecipeDetail is a saved recipe priced under the default mix state
type RecipeDetail struct {
	Recipe recipe.Recipe     `json:"recipe"`
	Report *mixing.MixReport `json:"report"`
}

// RecipeHandler serves the saved recipe book
type RecipeHandler struct {
	book  *recipe.Book
	svc   mixing.Service
	names naming.Resolver
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(book *recipe.Book, svc mixing.Service, names naming.Resolver) *RecipeHandler {
	return &RecipeHandler{book: book, svc: svc, names: names}
}

// HandleList lists saved recipes ordered by name, then key
// @Summary List saved recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} recipe.Recipe
// @Router /api/v1/recipes [get]
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.book.List())
}

// HandleSave builds the requested mix and saves it
// @Summary Save a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body MixBody true "Mix to save"
// @Success 201 {object} RecipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/recipes [post]
// @Security ApiKeyAuth
func (h *RecipeHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var body MixBody
	if err := DecodeAndValidateRequest(r, w, &body, "Save recipe"); err != nil {
		return
	}

	report, err := buildReport(r, h.svc, h.names, body)
	if err != nil {
		respondServiceError(w, r, ErrMsgSaveRecipeFailed, err)
		return
	}

	if err := h.book.Save(report.Sellable); err != nil {
		respondServiceError(w, r, ErrMsgSaveRecipeFailed, err)
		return
	}

	saved, _ := h.book.Get(report.Key)
	logger.FromContext(r.Context()).Info("Recipe saved", "key", saved.Key, "name", saved.Mix.Name)

	respondJSON(w, http.StatusCreated, RecipeResponse{Message: MsgRecipeSaved, Recipe: saved})
}

// HandleToggle saves the requested mix, or removes it when already saved
// @Summary Toggle a saved recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body MixBody true "Mix to toggle"
// @Success 200 {object} ToggleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/recipes/toggle [post]
// @Security ApiKeyAuth
func (h *RecipeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	var body MixBody
	if err := DecodeAndValidateRequest(r, w, &body, "Toggle recipe"); err != nil {
		return
	}

	report, err := buildReport(r, h.svc, h.names, body)
	if err != nil {
		respondServiceError(w, r, ErrMsgToggleRecipeFailed, err)
		return
	}

	saved, err := h.book.Toggle(report.Sellable)
	if err != nil {
		respondServiceError(w, r, ErrMsgToggleRecipeFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Recipe toggled", "key", report.Key, "saved", saved)

	respondJSON(w, http.StatusOK, ToggleResponse{Key: report.Key, Saved: saved})
}

// HandleGet returns a saved recipe with its economics
// @Summary Get a saved recipe
// @Tags recipes
// @Produce json
// @Param key path string true "Recipe key"
// @Success 200 {object} RecipeDetail
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{key} [get]
func (h *RecipeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	key := recipeKey(r)

	saved, ok := h.book.Get(key)
	if !ok {
		respondServiceError(w, r, ErrMsgGetRecipeFailed, fmt.Errorf("%w: %q", domain.ErrRecipeNotFound, key))
		return
	}

	report, err := h.svc.Evaluate(r.Context(), saved.Mix, domain.DefaultMixState())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRecipeFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, RecipeDetail{Recipe: saved, Report: report})
}

// HandleRemove deletes a saved recipe
// @Summary Remove a saved recipe
// @Tags recipes
// @Param key path string true "Recipe key"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/recipes/{key} [delete]
// @Security ApiKeyAuth
func (h *RecipeHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	key := recipeKey(r)

	if err := h.book.Remove(key); err != nil {
		respondServiceError(w, r, ErrMsgRemoveRecipeFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(MsgRecipeRemoved, "key", key)
	w.WriteHeader(http.StatusNoContent)
}

// recipeKey reads the key URL parameter, undoing any percent-encoding
func recipeKey(r *http.Request) string {
	raw := chi.URLParam(r, URLParamKey)
	if key, err := url.PathUnescape(raw); err == nil {
		return key
	}
	return raw
}
