package domain

import "time"

type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "adset"
	EntityTypeLink     EntityType = "link"
	EntityTypeArtist   EntityType = "artist"
	EntityTypeCreative EntityType = "creative"
)

// IsValid verifica se o tipo de entidade é conhecido.
func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCampaign, EntityTypeAdSet, EntityTypeLink, EntityTypeArtist, EntityTypeCreative:
		return true
	}
	return false
}

type Grade string

const (
	GradeFail   Grade = "fail"
	GradeWeak   Grade = "weak"
	GradePass   Grade = "pass"
	GradeStrong Grade = "strong"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Score é a avaliação de performance de uma entidade em uma janela de
// tempo. Registro imutável: uma vez calculado é inserido em append-only e
// nunca alterado. Os insumos brutos de analytics de terceiros usados no
// cálculo são descartados em memória e nunca aparecem aqui.
type Score struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	EntityType  EntityType `json:"entity_type"`
	EntityID    string     `json:"entity_id"`
	Score       int        `json:"score"`
	Grade       Grade      `json:"grade"`
	Confidence  Confidence `json:"confidence"`
	Reasons     []string   `json:"reasons"`
	WindowStart time.Time  `json:"window_start"`
	WindowEnd   time.Time  `json:"window_end"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GradeForScore deriva a faixa categórica do score numérico.
// Função pura: é a única fonte de verdade do mapeamento score→grade.
func GradeForScore(score int) Grade {
	switch {
	case score >= 80:
		return GradeStrong
	case score >= 60:
		return GradePass
	case score >= 40:
		return GradeWeak
	default:
		return GradeFail
	}
}

// ClampScore limita o score ao intervalo [1,100].
func ClampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}
	return score
}
