package domain

import "time"

type Action string

const (
	ActionScaleUp        Action = "scale_up"
	ActionMaintain       Action = "maintain"
	ActionRotateCreative Action = "rotate_creative"
	ActionTightenAud     Action = "tighten_audience"
	ActionPause          Action = "pause"
	ActionTestVariation  Action = "test_variation"
)

type AutomationMode string

const (
	AutomationManual     AutomationMode = "manual"
	AutomationGuided     AutomationMode = "guided"
	AutomationAutonomous AutomationMode = "autonomous"
)

// Decision é a recomendação de ação para uma campanha em um instante.
// Referencia o Score usado por valor (ScoreUsed): recomputar o score depois
// não altera decisões já registradas. A aplicação da decisão (mudar budget
// ou status de verdade) acontece em um passo externo com autorização
// própria — este core nunca escreve na campanha viva.
type Decision struct {
	ID                string         `json:"id"`
	CampaignID        string         `json:"campaign_id"`
	OwnerID           string         `json:"owner_id"`
	Action            Action         `json:"action"`
	Reason            string         `json:"reason"`
	ScoreUsed         int            `json:"score_used"`
	ConfidenceUsed    Confidence     `json:"confidence_used"`
	RecommendedBudget *float64       `json:"recommended_budget"`
	Guardrails        []string       `json:"guardrails"`
	AutomationMode    AutomationMode `json:"automation_mode"`
	CreatedAt         time.Time      `json:"created_at"`
}

// CampaignState é o recorte de estado da campanha que o motor de decisão
// enxerga. Somente leitura; montado pelo service a partir do repositório.
type CampaignState struct {
	CampaignID     string
	OwnerID        string
	Goal           CampaignGoal
	AutomationMode AutomationMode
	CurrentBudget  float64
	MaxBudget      float64
	AgeDays        int
	Known          bool
}
