package domain

import "time"

// CreativeRef é a referência a um criativo enviado pelo artista.
// O upload e o storage em si são colaboradores externos; aqui só importa
// se o asset existe e está pronto para publicação.
type CreativeRef struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	URL           string    `json:"url"`
	MediaType     string    `json:"media_type"`
	PlatformReady bool      `json:"platform_ready"`
	CreatedAt     time.Time `json:"created_at"`
}
