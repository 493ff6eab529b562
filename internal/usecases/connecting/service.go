// Package connecting resolve o estado de conexão do artista com a
// plataforma de anúncios a partir da fonte canônica de credenciais.
// Todos os consumidores (UI, IA, motor de decisão) passam por aqui.
package connecting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ghosteone/manager-api/infrastructure/repository"
	"github.com/ghosteone/manager-api/internal/domain"
)

type ConnectionResolver interface {
	ResolveConnectionStatus(ownerID string) domain.ConnectionStatus
}

type Service struct {
	credentialRepo repository.CredentialRepository
	now            func() time.Time
}

func NewService(credentialRepo repository.CredentialRepository) ConnectionResolver {
	return &Service{
		credentialRepo: credentialRepo,
		now:            time.Now,
	}
}

// ResolveConnectionStatus monta o value object de conexão. Nunca retorna
// erro: falha de leitura vira connected=false com a mensagem no campo
// Error, e ausência de registro vira o status padrão "nunca conectou".
func (s *Service) ResolveConnectionStatus(ownerID string) domain.ConnectionStatus {
	conn, err := s.credentialRepo.GetByOwnerID(ownerID)
	if err != nil {
		logrus.WithError(err).WithField("owner_id", ownerID).
			Error("connecting: falha ao ler a fonte canônica de credenciais")

		msg := "não foi possível consultar o estado de conexão"
		status := domain.NotConnectedStatus()
		status.Error = &msg
		return status
	}

	if conn == nil {
		return domain.NotConnectedStatus()
	}

	status := domain.ConnectionStatus{
		Connected:        conn.AccessToken != "",
		AdAccountID:      conn.AdAccountID,
		PageID:           conn.PageID,
		PixelID:          conn.PixelID,
		InstagramActorID: conn.InstagramActorID,
		MissingAssets:    []string{},
	}

	if !status.Connected {
		// Linha existe mas sem token: tratar como nunca conectado,
		// sem vazar IDs de assets órfãos para o chamador.
		return domain.NotConnectedStatus()
	}

	// Token expirado continua "conectado": o chamador precisa distinguir
	// "nunca conectou" de "precisa reautenticar".
	if conn.TokenExpiresAt != nil && conn.TokenExpiresAt.Before(s.now()) {
		status.TokenExpired = true
	}

	// Assets obrigatórios nomeados um a um, para orientação precisa.
	// Pixel e ator do Instagram são opcionais e nunca travam a publicação.
	if conn.AdAccountID == nil || *conn.AdAccountID == "" {
		status.MissingAssets = append(status.MissingAssets, domain.AssetAdAccountID)
	}
	if conn.PageID == nil || *conn.PageID == "" {
		status.MissingAssets = append(status.MissingAssets, domain.AssetPageID)
	}

	status.AssetsConfigured = len(status.MissingAssets) == 0

	return status
}
