package handler

import (
	"net/http"

	"github.com/osse101/MixCalc_Go/internal/logger"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
)

// HandleReloadAliases reloads the naming resolver configuration (admin only)
// @Summary Reload alias configuration
// @Description Reloads the name aliases from the JSON configuration file
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload-aliases [post]
// @Security ApiKeyAuth
func HandleReloadAliases(resolver naming.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		log.Info("Reloading naming resolver configuration")

		if err := resolver.Reload(); err != nil {
			log.Error("Failed to reload naming resolver", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadConfigFailed)
			return
		}

		log.Info("Naming resolver configuration reloaded successfully")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgConfigReloadedSuccess})
	}
}

// HandleClearCache drops every memoized mix build (admin only)
// @Summary Clear the mix cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/clear [post]
// @Security ApiKeyAuth
func HandleClearCache(svc mixing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearCache()
		logger.FromContext(r.Context()).Info("Mix cache cleared")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheClearedSuccess})
	}
}
