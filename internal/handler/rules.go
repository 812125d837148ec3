package handler

import (
	"net/http"

	"github.com/osse101/MixCalc_Go/internal/domain"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
)

// RuleView is a reaction rule plus its readable form
type RuleView struct {
	mixing.Rule
	Text string `json:"text"`
}

// HandleGetRules lists the reaction table in application order, optionally
// only the rules triggered by one incoming effect
// @Summary List reaction rules
// @Tags rules
// @Produce json
// @Param incoming query string false "Incoming effect"
// @Success 200 {array} RuleView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rules [get]
func HandleGetRules(svc mixing.Service, names naming.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var incoming *domain.Effect
		if name := GetOptionalQueryParam(r, QueryParamIncoming, ""); name != "" {
			e, err := names.ResolveEffect(name)
			if err != nil {
				respondServiceError(w, r, ErrMsgGetRulesFailed, err)
				return
			}
			incoming = &e
		}

		rules := svc.Rules(incoming)
		views := make([]RuleView, 0, len(rules))
		for _, rule := range rules {
			views = append(views, RuleView{Rule: rule, Text: rule.String()})
		}

		respondJSON(w, http.StatusOK, views)
	}
}
