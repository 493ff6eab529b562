package domain

import "time"

// Nomes dos assets obrigatórios para publicação de anúncios.
// São usados em MissingAssets para que o frontend e a IA consigam
// orientar o artista sobre exatamente o que falta configurar.
const (
	AssetAdAccountID = "adAccountId"
	AssetPageID      = "pageId"
)

// ConnectionStatus é a visão normalizada da conexão do artista com a
// plataforma de anúncios. É um value object: recalculado a cada requisição
// a partir da fonte canônica, nunca cacheado.
type ConnectionStatus struct {
	Connected        bool     `json:"connected"`
	AssetsConfigured bool     `json:"assets_configured"`
	TokenExpired     bool     `json:"token_expired"`
	AdAccountID      *string  `json:"ad_account_id"`
	PageID           *string  `json:"page_id"`
	PixelID          *string  `json:"pixel_id"`
	InstagramActorID *string  `json:"instagram_actor_id"`
	MissingAssets    []string `json:"missing_assets"`
	Error            *string  `json:"error"`
}

// NotConnectedStatus retorna o value object padrão para um artista sem
// registro na fonte canônica. Não é um erro: "nunca conectou" é um estado
// válido e esperado.
func NotConnectedStatus() ConnectionStatus {
	return ConnectionStatus{
		Connected:        false,
		AssetsConfigured: false,
		MissingAssets:    []string{},
	}
}

// MetaConnection é a linha da fonte canônica de credenciais
// (tabela meta_connections). Este core apenas lê; escrita acontece no
// fluxo de OAuth, fora daqui.
type MetaConnection struct {
	OwnerID          string     `json:"owner_id"`
	AccessToken      string     `json:"-"`
	TokenExpiresAt   *time.Time `json:"-"`
	AdAccountID      *string    `json:"ad_account_id"`
	PageID           *string    `json:"page_id"`
	PixelID          *string    `json:"pixel_id"`
	InstagramActorID *string    `json:"instagram_actor_id"`
}
