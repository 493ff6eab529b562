package domain

// StreamCounts é a resposta bruta da fonte de analytics de streaming.
// Conteúdo sensível por contrato: esses números nunca podem ser
// persistidos, logados ou expostos em texto de "reasons". O integrador
// reduz tudo a um percentual de lift antes de devolver ao chamador.
type StreamCounts struct {
	EntityID      string  `json:"entity_id"`
	BaselineCount float64 `json:"baseline_count"`
	WindowCount   float64 `json:"window_count"`
}
