package handler

import (
	"net/http"

	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/internal/usecases/aggregating"
	"github.com/ghosteone/manager-api/pkg/apiErrors"
	"github.com/ghosteone/manager-api/pkg/middleware"
)

// GetManagerContext retorna o snapshot reconciliado do workspace do
// artista. Sub-leituras falhas aparecem em context.errors; a resposta é
// 200 mesmo assim, com partial=true sinalizando degradação.
func GetManagerContext(service aggregating.ContextBuilder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		mctx := service.BuildManagerContext(userClaims.OwnerID)

		respondOK(w, map[string]any{
			"context": mctx,
			"partial": len(mctx.Errors) > 0,
		})
	}
}
