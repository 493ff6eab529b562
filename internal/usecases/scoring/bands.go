package scoring

import "math"

// Pesos e limiares do cálculo de score. São defaults iniciais herdados do
// manager original, ainda sem validação contra dados reais de resultado —
// tuning mexe só neste arquivo.
const (
	intentWeight    = 0.5
	responseWeight  = 0.3
	stabilityWeight = 0.2

	clickEfficiencyWeight = 0.4
	costEfficiencyWeight  = 0.3
	depthWeight           = 0.3

	highConfidenceMinClicks    = 100
	highConfidenceMinStability = 70
	lowConfidenceMaxStability  = 50

	// Estabilidade atribuída quando a janela tem menos de três dias e não
	// dá para medir variância. A série diária cobre a janela inteira, com
	// dia sem clique valendo zero — lacuna de tráfego conta contra a
	// estabilidade, não some da conta.
	stabilityDefault = 70
	minDailyBuckets  = 3
)

// intentScore combina eficiência de clique, eficiência de custo e
// profundidade de intenção, cada uma já em [0,100].
func intentScore(totalClicks, platformClicks int, spend, oneClickRate float64) float64 {
	var clickEfficiency float64
	if totalClicks > 0 {
		clickEfficiency = float64(platformClicks) / float64(totalClicks) * 100
	}

	var costEfficiency float64
	if spend > 0 {
		costEfficiency = math.Min(100, float64(platformClicks)/spend*10)
	}

	depth := oneClickRate * 100

	return clickEfficiencyWeight*clickEfficiency +
		costEfficiencyWeight*costEfficiency +
		depthWeight*depth
}

// responseScoreFromLift mapeia o lift (fração) em faixas fixas.
// Lift negativo escala linearmente para [10,40]: -100% → 10, 0% → 40.
func responseScoreFromLift(lift float64) float64 {
	switch {
	case lift >= 0.50:
		return 100
	case lift >= 0.30:
		return 90
	case lift >= 0.20:
		return 80
	case lift >= 0.10:
		return 70
	case lift >= 0.05:
		return 60
	case lift >= 0:
		return 50
	}

	if lift < -1 {
		lift = -1
	}
	return 40 + lift*30
}

// responseScoreNeutral é a contribuição quando a fonte de terceiros está
// indisponível; nesse caso a confiança é limitada a "medium".
const responseScoreNeutral = 50

// stabilityScoreFromDaily mede a variância dos totais diários contra a
// média e mapeia em faixas. Histórico curto cai no default.
func stabilityScoreFromDaily(daily []int) float64 {
	if len(daily) < minDailyBuckets {
		return stabilityDefault
	}

	var sum float64
	for _, count := range daily {
		sum += float64(count)
	}
	mean := sum / float64(len(daily))
	if mean == 0 {
		return stabilityDefault
	}

	var sq float64
	for _, count := range daily {
		d := float64(count) - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(len(daily)))
	variancePercent := stddev / mean * 100

	switch {
	case variancePercent <= 10:
		return 100
	case variancePercent <= 20:
		return 85
	case variancePercent <= 30:
		return 70
	case variancePercent <= 50:
		return 50
	default:
		return 30
	}
}

// Vocabulário fixo de "reasons". Nenhuma entrada contém dígitos: é a
// garantia estrutural de que métricas brutas de terceiros não vazam para
// texto visível ao usuário.
const (
	reasonIntentStrong   = "Intent signals strong"
	reasonIntentWeak     = "Intent signals weak; audience may not match"
	reasonResponseStrong = "Audience response trending up"
	reasonResponseWeak   = "Audience response below baseline"
	reasonUnstable       = "Results unstable; waiting for confirmation"
	reasonSteady         = "Results holding steady across the window"
	reasonNoThirdParty   = "Limited external signal; relying on first-party data"
	reasonLowVolume      = "Not enough click volume for a confident read"
)

// buildReasons seleciona frases do vocabulário conforme os sub-scores.
// Tabela de lookup, não texto livre.
func buildReasons(intent, response, stability float64, thirdPartyAvailable bool, totalClicks int) []string {
	reasons := make([]string, 0, 3)

	if intent >= 70 {
		reasons = append(reasons, reasonIntentStrong)
	} else if intent < 40 {
		reasons = append(reasons, reasonIntentWeak)
	}

	if thirdPartyAvailable {
		if response >= 70 {
			reasons = append(reasons, reasonResponseStrong)
		} else if response < 50 {
			reasons = append(reasons, reasonResponseWeak)
		}
	} else {
		reasons = append(reasons, reasonNoThirdParty)
	}

	if stability < lowConfidenceMaxStability {
		reasons = append(reasons, reasonUnstable)
	} else if stability >= 85 {
		reasons = append(reasons, reasonSteady)
	}

	if totalClicks < highConfidenceMinClicks {
		reasons = append(reasons, reasonLowVolume)
	}

	return reasons
}
