package deciding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ghosteone/manager-api/internal/domain"
)

func healthyState() domain.CampaignState {
	return domain.CampaignState{
		CampaignID:     "cmp-1",
		OwnerID:        "owner-1",
		Goal:           domain.CampaignGoalStreams,
		AutomationMode: domain.AutomationAutonomous,
		CurrentBudget:  40,
		MaxBudget:      200,
		AgeDays:        10,
		Known:          true,
	}
}

func scoreWith(value int, confidence domain.Confidence) domain.Score {
	return domain.Score{
		Score:      value,
		Grade:      domain.GradeForScore(value),
		Confidence: confidence,
	}
}

func TestRecommend_BandasDeAcao(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected domain.Action
	}{
		{"Score forte escala a campanha", 85, domain.ActionScaleUp},
		{"Limite inferior da banda forte", 80, domain.ActionScaleUp},
		{"Score aprovado testa variação", 70, domain.ActionTestVariation},
		{"Limite inferior da banda aprovada", 60, domain.ActionTestVariation},
		{"Score fraco troca o criativo", 50, domain.ActionRotateCreative},
		{"Limite inferior da banda fraca", 40, domain.ActionRotateCreative},
		{"Score reprovado pausa", 39, domain.ActionPause},
		{"Score mínimo pausa", 1, domain.ActionPause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Recommend(healthyState(), scoreWith(tt.score, domain.ConfidenceHigh))
			assert.Equal(t, tt.expected, decision.Action)
		})
	}
}

func TestRecommend_PauseIgnoraGuardrails(t *testing.T) {
	// Pausar gasto ineficiente é sempre a ação segura: nem campanha nova,
	// nem confiança baixa, nem modo manual mudam a ação.
	state := healthyState()
	state.AgeDays = 1
	state.AutomationMode = domain.AutomationManual

	decision := Recommend(state, scoreWith(20, domain.ConfidenceLow))

	assert.Equal(t, domain.ActionPause, decision.Action)
	assert.NotContains(t, decision.Guardrails, guardrailLowConfidence)
	assert.NotContains(t, decision.Guardrails, guardrailCampaignTooYoung)
}

func TestRecommend_ConfiancaBaixaNuncaEscala(t *testing.T) {
	for value := 80; value <= 100; value++ {
		decision := Recommend(healthyState(), scoreWith(value, domain.ConfidenceLow))

		assert.Equal(t, domain.ActionMaintain, decision.Action)
		assert.Equal(t, reasonMaintainGuarded, decision.Reason)
		assert.Contains(t, decision.Guardrails, guardrailLowConfidence)
		assert.Nil(t, decision.RecommendedBudget)
	}
}

func TestRecommend_CampanhaNovaBloqueiaEscalaETroca(t *testing.T) {
	state := healthyState()
	state.AgeDays = 2

	tests := []struct {
		name  string
		score int
	}{
		{"Escala bloqueada na fase de aprendizado", 85},
		{"Troca de criativo bloqueada na fase de aprendizado", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Recommend(state, scoreWith(tt.score, domain.ConfidenceHigh))

			assert.Equal(t, domain.ActionMaintain, decision.Action)
			assert.Contains(t, decision.Guardrails, guardrailCampaignTooYoung)
		})
	}
}

func TestRecommend_CampanhaNovaNaoBloqueiaTeste(t *testing.T) {
	state := healthyState()
	state.AgeDays = 1

	decision := Recommend(state, scoreWith(70, domain.ConfidenceHigh))

	assert.Equal(t, domain.ActionTestVariation, decision.Action)
	assert.Empty(t, decision.Guardrails)
}

func TestRecommend_FatorDeEscalaPorConfianca(t *testing.T) {
	tests := []struct {
		name       string
		confidence domain.Confidence
		expected   float64
	}{
		{"Confiança alta usa fator cheio", domain.ConfidenceHigh, 50},
		{"Confiança média usa fator conservador", domain.ConfidenceMedium, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Recommend(healthyState(), scoreWith(85, tt.confidence))

			assert.Equal(t, domain.ActionScaleUp, decision.Action)
			if assert.NotNil(t, decision.RecommendedBudget) {
				assert.Equal(t, tt.expected, *decision.RecommendedBudget)
			}
			assert.NotContains(t, decision.Guardrails, guardrailBudgetClamped)
		})
	}
}

func TestRecommend_BudgetLimitadoAoTeto(t *testing.T) {
	state := healthyState()
	state.CurrentBudget = 90
	state.MaxBudget = 100

	decision := Recommend(state, scoreWith(85, domain.ConfidenceHigh))

	assert.Equal(t, domain.ActionScaleUp, decision.Action)
	if assert.NotNil(t, decision.RecommendedBudget) {
		assert.Equal(t, 100.0, *decision.RecommendedBudget)
	}
	assert.Contains(t, decision.Guardrails, guardrailBudgetClamped)
}

func TestRecommend_BudgetNoTetoNaoEscala(t *testing.T) {
	// Escalar exige budget estritamente abaixo do teto: no teto (ou acima
	// dele) a ação vira maintain com o guardrail registrado, nunca um
	// scale_up inócuo.
	tests := []struct {
		name          string
		currentBudget float64
	}{
		{"Budget exatamente no teto", 200},
		{"Budget acima do teto", 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := healthyState()
			state.CurrentBudget = tt.currentBudget
			state.MaxBudget = 200

			decision := Recommend(state, scoreWith(90, domain.ConfidenceHigh))

			assert.Equal(t, domain.ActionMaintain, decision.Action)
			assert.Equal(t, reasonMaintainGuarded, decision.Reason)
			assert.Contains(t, decision.Guardrails, guardrailBudgetClamped)
			assert.Nil(t, decision.RecommendedBudget)
		})
	}
}

func TestRecommend_SemTetoNaoLimita(t *testing.T) {
	state := healthyState()
	state.CurrentBudget = 90
	state.MaxBudget = 0

	decision := Recommend(state, scoreWith(85, domain.ConfidenceHigh))

	if assert.NotNil(t, decision.RecommendedBudget) {
		assert.Equal(t, 112.5, *decision.RecommendedBudget)
	}
	assert.NotContains(t, decision.Guardrails, guardrailBudgetClamped)
}

func TestRecommend_ModoManualPreservaRecomendacao(t *testing.T) {
	state := healthyState()
	state.AutomationMode = domain.AutomationManual

	decision := Recommend(state, scoreWith(85, domain.ConfidenceHigh))

	// A recomendação não é rebaixada em modo manual; a anotação sinaliza
	// que a aplicação exige aprovação explícita.
	assert.Equal(t, domain.ActionScaleUp, decision.Action)
	assert.Contains(t, decision.Guardrails, guardrailManualApproval)
	assert.NotNil(t, decision.RecommendedBudget)
}

func TestRecommend_EstadoDesconhecidoMantem(t *testing.T) {
	state := healthyState()
	state.Known = false

	decision := Recommend(state, scoreWith(85, domain.ConfidenceHigh))

	assert.Equal(t, domain.ActionMaintain, decision.Action)
	assert.Equal(t, reasonInsufficientData, decision.Reason)
	assert.Nil(t, decision.RecommendedBudget)
	assert.Equal(t, []string{guardrailInsufficientData}, decision.Guardrails)
}

func TestRecommend_Deterministico(t *testing.T) {
	state := healthyState()
	score := scoreWith(72, domain.ConfidenceMedium)

	first := Recommend(state, score)
	second := Recommend(state, score)

	assert.Equal(t, first, second)
}

func TestRecommend_CarregaScorePorValor(t *testing.T) {
	decision := Recommend(healthyState(), scoreWith(85, domain.ConfidenceHigh))

	assert.Equal(t, 85, decision.ScoreUsed)
	assert.Equal(t, domain.ConfidenceHigh, decision.ConfidenceUsed)
	assert.Equal(t, domain.AutomationAutonomous, decision.AutomationMode)
}

func TestOptimizationEventFor(t *testing.T) {
	tests := []struct {
		goal     domain.CampaignGoal
		expected string
	}{
		{domain.CampaignGoalStreams, "LINK_CLICKS"},
		{domain.CampaignGoalClicks, "LINK_CLICKS"},
		{domain.CampaignGoalFollowers, "PAGE_LIKES"},
		{domain.CampaignGoalPresave, "OFFSITE_CONVERSIONS"},
		{domain.CampaignGoal("unknown"), "LINK_CLICKS"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, OptimizationEventFor(tt.goal))
	}
}
