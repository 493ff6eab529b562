package domain

import "time"

// ClickStats é o agregado de cliques de uma entidade (ou do artista
// inteiro) dentro de uma janela, já pronto para o cálculo de score.
type ClickStats struct {
	TotalClicks    int       `json:"total_clicks"`
	PlatformClicks int       `json:"platform_clicks"`
	OneClicks      int       `json:"one_clicks"`
	WindowStart    time.Time `json:"window_start"`
	WindowEnd      time.Time `json:"window_end"`

	// DailyClicks são os totais por dia dentro da janela, na ordem
	// cronológica. Alimentam o cálculo de estabilidade.
	DailyClicks []int `json:"daily_clicks"`
}

// OneClickRate é a taxa de conversão one-click ("intent depth").
func (s ClickStats) OneClickRate() float64 {
	if s.TotalClicks == 0 {
		return 0
	}
	return float64(s.OneClicks) / float64(s.TotalClicks)
}
