package handler

import (
	"net/http"

	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/internal/usecases/connecting"
	"github.com/ghosteone/manager-api/pkg/apiErrors"
	"github.com/ghosteone/manager-api/pkg/middleware"
)

// GetConnectionStatus retorna o estado de conexão do artista com a
// plataforma de anúncios. Sempre 200: "não conectado" é um estado válido,
// não um erro.
func GetConnectionStatus(service connecting.ConnectionResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		status := service.ResolveConnectionStatus(userClaims.OwnerID)

		respondOK(w, map[string]any{
			"connection": status,
		})
	}
}
