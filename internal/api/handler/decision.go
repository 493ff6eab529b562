package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/internal/usecases/deciding"
	"github.com/ghosteone/manager-api/pkg/apiErrors"
	"github.com/ghosteone/manager-api/pkg/middleware"
)

// RecommendCampaign computa uma recomendação de ação para a campanha a
// partir do último score e a registra no histórico de operações.
func RecommendCampaign(service deciding.Decider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		decision, err := service.RecommendForCampaign(userClaims.OwnerID, campaignID)
		if err != nil {
			handleDecisionError(w, err)
			return
		}

		respondOK(w, map[string]any{
			"decision": decision,
		})
	}
}

// ListCampaignDecisions retorna o histórico de decisões da campanha,
// mais recente primeiro.
func ListCampaignDecisions(service deciding.Decider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		decisions, err := service.ListDecisions(userClaims.OwnerID, campaignID, limit)
		if err != nil {
			handleDecisionError(w, err)
			return
		}

		respondOK(w, map[string]any{
			"decisions": decisions,
		})
	}
}

func handleDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, deciding.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidEntity, "Campanha inexistente ou não pertencente ao artista", nil)

	case errors.Is(err, deciding.ErrNoScoreAvailable):
		apiErrors.WriteError(w, apiErrors.ErrNoScore, "Campanha ainda não possui score calculado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao computar recomendação", nil)
	}
}
