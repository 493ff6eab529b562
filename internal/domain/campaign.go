package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "ACTIVE"
	CampaignStatusPaused CampaignStatus = "PAUSED"
	CampaignStatusDraft  CampaignStatus = "DRAFT"
)

// CampaignGoal é o objetivo declarado da campanha. O mapeamento
// goal→evento de otimização fica no motor de decisão e é tabelado, porque
// "streams" hoje roteia pelo mesmo caminho de tráfego genérico até o fluxo
// de conversão próprio existir.
type CampaignGoal string

const (
	CampaignGoalStreams   CampaignGoal = "streams"
	CampaignGoalClicks    CampaignGoal = "clicks"
	CampaignGoalFollowers CampaignGoal = "followers"
	CampaignGoalPresave   CampaignGoal = "presave"
)

// CampaignSummary é o registro de campanha como este core o lê.
// Budget e status são somente leitura aqui; os únicos campos que o core
// escreve de volta são o cache de último score (LatestScore*).
type CampaignSummary struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"owner_id"`
	ParentID       *string        `json:"parent_id,omitempty"`
	Kind           EntityType     `json:"kind"`
	Name           string         `json:"name"`
	Goal           CampaignGoal   `json:"goal"`
	Status         CampaignStatus `json:"status"`
	AutomationMode AutomationMode `json:"automation_mode"`
	DailyBudget    float64        `json:"daily_budget"`
	MaxDailyBudget float64        `json:"max_daily_budget"`
	SpendWindow    float64        `json:"spend_window"`
	LatestScore    *int           `json:"latest_score,omitempty"`
	LatestGrade    *Grade         `json:"latest_grade,omitempty"`
	ScoredAt       *time.Time     `json:"scored_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// AgeDays retorna a idade da campanha em dias inteiros.
func (c *CampaignSummary) AgeDays(now time.Time) int {
	if c == nil || c.CreatedAt.IsZero() {
		return 0
	}
	return int(now.Sub(c.CreatedAt).Hours() / 24)
}
