package domain

import "time"

// TrackingSignals agrega os sinais primários de clique da janela.
type TrackingSignals struct {
	TotalClicks    int       `json:"total_clicks"`
	PlatformClicks int       `json:"platform_clicks"`
	OneClickRate   float64   `json:"one_click_rate"`
	WindowStart    time.Time `json:"window_start"`
	WindowEnd      time.Time `json:"window_end"`
}

// ManagerContext é o snapshot reconciliado que alimenta tanto o raciocínio
// da IA quanto as decisões determinísticas. Montado a cada requisição e de
// posse exclusiva do chamador.
//
// Invariante: falha em qualquer sub-leitura vira uma entrada em Errors e
// uma coleção vazia no campo correspondente — o contexto sempre é
// retornado, nunca nil.
type ManagerContext struct {
	OwnerID           string            `json:"owner_id"`
	Connection        ConnectionStatus  `json:"connection"`
	SmartLinks        []*SmartLink      `json:"smart_links"`
	Campaigns         []*CampaignSummary `json:"campaigns"`
	UploadedCreatives []*CreativeRef    `json:"uploaded_creatives"`
	TrackingSignals   TrackingSignals   `json:"tracking_signals"`
	Errors            []string          `json:"errors"`
	GeneratedAt       time.Time         `json:"generated_at"`
}
