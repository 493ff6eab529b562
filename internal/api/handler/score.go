package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/internal/usecases/scoring"
	"github.com/ghosteone/manager-api/pkg/apiErrors"
	"github.com/ghosteone/manager-api/pkg/middleware"
)

var validate = validator.New()

type ComputeScoreRequest struct {
	EntityType  string `json:"entity_type" validate:"required,oneof=campaign adset link artist creative"`
	EntityID    string `json:"entity_id" validate:"required"`
	WindowHours int    `json:"window_hours" validate:"omitempty,gte=1"`
}

// ComputeScore calcula e persiste um novo score para a entidade informada.
func ComputeScore(service scoring.Scorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req ComputeScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados da requisição inválidos", err.Error())
			return
		}

		score, err := service.ComputeScore(
			userClaims.OwnerID,
			domain.EntityType(req.EntityType),
			req.EntityID,
			req.WindowHours,
		)
		if err != nil {
			handleScoreError(w, err)
			return
		}

		respondOK(w, map[string]any{
			"score": score,
		})
	}
}

// GetLatestScore retorna o score mais recente registrado para a entidade.
func GetLatestScore(service *scoring.ReadService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		entityType := domain.EntityType(params.ByName("type"))
		entityID := params.ByName("id")

		if !entityType.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de entidade inválido", nil)
			return
		}

		score, err := service.LatestScore(userClaims.OwnerID, entityType, entityID)
		if err != nil {
			handleScoreError(w, err)
			return
		}

		if score == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoScore, "Entidade ainda sem score calculado", nil)
			return
		}

		respondOK(w, map[string]any{
			"score": score,
		})
	}
}

// handleScoreError mapeia erros do motor de score para o envelope da API
func handleScoreError(w http.ResponseWriter, err error) {
	var scoreErr *scoring.ScoreError
	if errors.As(err, &scoreErr) {
		apiErrors.WriteError(w, scoreErr.Code, scoreErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, scoring.ErrInvalidEntity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidEntity, "Entidade inexistente ou não pertencente ao artista", nil)

	case errors.Is(err, scoring.ErrInvalidEntityType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de entidade desconhecido", nil)

	case errors.Is(err, scoring.ErrInvalidWindow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Janela de tempo inválida", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao calcular score", nil)
	}
}
