// Package deciding transforma o score mais recente de uma campanha em uma
// recomendação de ação. O motor (Recommend) é puro: sem I/O, sem relógio,
// sem escrita em campanha viva — aplicar a decisão é um passo externo.
package deciding

import (
	"github.com/ghosteone/manager-api/internal/domain"
	"github.com/ghosteone/manager-api/pkg/utils"
)

const (
	scaleFactorHighConfidence = 1.25
	scaleFactorDefault        = 1.15

	// Campanhas mais novas que isso ainda estão na fase de aprendizado da
	// plataforma de anúncios; escalar ou trocar criativo cedo reseta o
	// aprendizado.
	minCampaignAgeDays = 3
)

// Guardrails e motivos fixos. Guardrail nunca é silencioso: toda regra que
// alterar ou condicionar a ação aparece por nome no registro da decisão.
const (
	guardrailLowConfidence    = "low_confidence_blocks_scale_up"
	guardrailCampaignTooYoung = "campaign_in_learning_phase"
	guardrailBudgetClamped    = "budget_clamped_to_max"
	guardrailManualApproval   = "manual_mode_requires_approval"
	guardrailInsufficientData = "insufficient_data"

	reasonScaleUp          = "Score strong; campaign is ready for more budget"
	reasonTestVariation    = "Score passing; testing a variation before scaling"
	reasonRotateCreative   = "Score weak; creative fatigue is the likely cause"
	reasonPause            = "Score failing; pausing to stop inefficient spend"
	reasonMaintainGuarded  = "Holding steady until guardrails clear"
	reasonInsufficientData = "Insufficient data; maintaining current state"
)

// goalOptimizationEvent mapeia o objetivo da campanha para o evento de
// otimização enviado à plataforma de anúncios. "streams" roteia por
// LINK_CLICKS até existir um evento de conversão próprio de streaming.
var goalOptimizationEvent = map[domain.CampaignGoal]string{
	domain.CampaignGoalStreams:   "LINK_CLICKS",
	domain.CampaignGoalClicks:    "LINK_CLICKS",
	domain.CampaignGoalFollowers: "PAGE_LIKES",
	domain.CampaignGoalPresave:   "OFFSITE_CONVERSIONS",
}

// OptimizationEventFor retorna o evento de otimização do objetivo, com
// fallback para tráfego genérico quando o objetivo é desconhecido.
func OptimizationEventFor(goal domain.CampaignGoal) string {
	if event, ok := goalOptimizationEvent[goal]; ok {
		return event
	}
	return "LINK_CLICKS"
}

// Recommend é o motor de decisão. Determinístico: mesma entrada, mesma
// saída. A decisão referencia o score por valor, então recomputações
// futuras não mudam o que foi decidido aqui.
func Recommend(state domain.CampaignState, score domain.Score) domain.Decision {
	decision := domain.Decision{
		CampaignID:     state.CampaignID,
		OwnerID:        state.OwnerID,
		ScoreUsed:      score.Score,
		ConfidenceUsed: score.Confidence,
		AutomationMode: state.AutomationMode,
		Guardrails:     []string{},
	}

	if !state.Known {
		decision.Action = domain.ActionMaintain
		decision.Reason = reasonInsufficientData
		decision.Guardrails = append(decision.Guardrails, guardrailInsufficientData)
		return decision
	}

	switch {
	case score.Score >= 80:
		decision.Action = domain.ActionScaleUp
		decision.Reason = reasonScaleUp
	case score.Score >= 60:
		decision.Action = domain.ActionTestVariation
		decision.Reason = reasonTestVariation
	case score.Score >= 40:
		decision.Action = domain.ActionRotateCreative
		decision.Reason = reasonRotateCreative
	default:
		decision.Action = domain.ActionPause
		decision.Reason = reasonPause
	}

	// Pause nunca é bloqueado por guardrail: parar gasto ineficiente é
	// sempre a ação segura.
	if decision.Action != domain.ActionPause {
		applyGuardrails(&decision, state, score)
	}

	if decision.Action == domain.ActionScaleUp {
		decision.RecommendedBudget = scaledBudget(&decision, state, score)
	}

	// Em modo manual a recomendação é preservada na íntegra; a anotação
	// sinaliza que a aplicação exige aprovação explícita do artista.
	if state.AutomationMode == domain.AutomationManual {
		decision.Guardrails = append(decision.Guardrails, guardrailManualApproval)
	}

	return decision
}

func applyGuardrails(decision *domain.Decision, state domain.CampaignState, score domain.Score) {
	if decision.Action == domain.ActionScaleUp && score.Confidence == domain.ConfidenceLow {
		decision.Action = domain.ActionMaintain
		decision.Reason = reasonMaintainGuarded
		decision.Guardrails = append(decision.Guardrails, guardrailLowConfidence)
	}

	// Escalar exige budget estritamente abaixo do teto; no teto (ou acima,
	// se o teto foi reduzido depois) não há para onde crescer.
	atBudgetCap := state.MaxBudget > 0 && state.CurrentBudget >= state.MaxBudget
	if decision.Action == domain.ActionScaleUp && atBudgetCap {
		decision.Action = domain.ActionMaintain
		decision.Reason = reasonMaintainGuarded
		decision.Guardrails = append(decision.Guardrails, guardrailBudgetClamped)
	}

	tooYoung := state.AgeDays < minCampaignAgeDays
	if tooYoung && (decision.Action == domain.ActionScaleUp || decision.Action == domain.ActionRotateCreative) {
		decision.Action = domain.ActionMaintain
		decision.Reason = reasonMaintainGuarded
		decision.Guardrails = append(decision.Guardrails, guardrailCampaignTooYoung)
	}
}

func scaledBudget(decision *domain.Decision, state domain.CampaignState, score domain.Score) *float64 {
	factor := scaleFactorDefault
	if score.Confidence == domain.ConfidenceHigh {
		factor = scaleFactorHighConfidence
	}

	budget := utils.RoundWithTwoDecimalPlace(state.CurrentBudget * factor)
	if state.MaxBudget > 0 && budget > state.MaxBudget {
		budget = state.MaxBudget
		decision.Guardrails = append(decision.Guardrails, guardrailBudgetClamped)
	}

	return &budget
}
