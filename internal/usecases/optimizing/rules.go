package optimizing

import (
	"fmt"
	"math"

	"github.com/adnova/ads-autopilot-api/internal/domain"
	"github.com/adnova/ads-autopilot-api/pkg/utils"
)

// Limiares das regras de otimização
const (
	// Orçamento
	budgetIncreaseROAS     = 4.0
	budgetIncreaseMinDays  = 3
	budgetIncreaseStep     = 0.10
	budgetIncreaseMax      = 0.50
	budgetDecreaseROAS     = 1.5
	budgetDecreaseMinDays  = 2
	budgetDecreaseStep     = 0.10
	budgetDecreaseMax      = 0.30

	// Lance
	biddingHighCPC            = 3.0
	biddingLowConversionRate  = 1.0
	biddingMinCTR             = 1.0

	// Criativos
	creativeMinActive        = 2
	creativeROASFactor       = 0.8
	creativeMinImpressions   = 1000

	// Segmentação
	targetingHighFrequency    = 3.0
	targetingLowCTR           = 1.5
	targetingHighCTR          = 2.0
	targetingLowConversionRate = 1.5
	targetingExpandStep       = 5
	targetingNarrowStep       = 2

	// Confianças usadas quando a análise da IA não está disponível
	fallbackConfidenceBudget          = 75
	fallbackConfidenceBidding         = 70
	fallbackConfidenceCreative        = 80
	fallbackConfidenceTargetingExpand = 75
	fallbackConfidenceTargetingNarrow = 70
)

// CreativePerformance agrega as métricas de um criativo para a regra de criativos
type CreativePerformance struct {
	Creative *domain.AdCreative
	Snapshot domain.MetricsSnapshot
}

// Rules avalia as regras de otimização de uma campanha. Cada método é uma
// função pura sobre a campanha e suas métricas: retorna uma proposta ou nil.
type Rules struct{}

// EvaluateBudget propõe aumento ou redução do orçamento diário conforme o ROAS.
// A proposta é arredondada para duas casas; se o valor arredondado for igual ao
// orçamento atual, não há proposta.
func (Rules) EvaluateBudget(campaign *domain.Campaign, snapshot domain.MetricsSnapshot, aiConfidence float64) *domain.OptimizationProposal {
	var newBudget float64
	var reason string

	switch {
	case snapshot.ROAS >= budgetIncreaseROAS && snapshot.DaysRunning >= budgetIncreaseMinDays:
		increase := math.Min((snapshot.ROAS-budgetIncreaseROAS)*budgetIncreaseStep, budgetIncreaseMax)
		newBudget = campaign.Budget * (1 + increase)
		reason = fmt.Sprintf("ROAS de %.2f sustentado por %d dias permite escalar o orçamento", snapshot.ROAS, snapshot.DaysRunning)
	case snapshot.ROAS <= budgetDecreaseROAS && snapshot.DaysRunning >= budgetDecreaseMinDays:
		decrease := math.Min((budgetDecreaseROAS-snapshot.ROAS)*budgetDecreaseStep, budgetDecreaseMax)
		newBudget = campaign.Budget * (1 - decrease)
		reason = fmt.Sprintf("ROAS de %.2f por %d dias pede redução do orçamento", snapshot.ROAS, snapshot.DaysRunning)
	default:
		return nil
	}

	newBudget = utils.RoundWithTwoDecimalPlace(newBudget)
	if newBudget == campaign.Budget {
		return nil
	}

	return &domain.OptimizationProposal{
		Type: domain.OptimizationTypeBudget,
		Budget: &domain.BudgetChange{
			Old: campaign.Budget,
			New: newBudget,
		},
		Reason:     reason,
		Confidence: confidenceOrFallback(aiConfidence, fallbackConfidenceBudget),
	}
}

// EvaluateBidding propõe a troca da estratégia de lance. A primeira condição
// satisfeita vence.
func (Rules) EvaluateBidding(campaign *domain.Campaign, snapshot domain.MetricsSnapshot, aiConfidence float64) *domain.OptimizationProposal {
	var newStrategy domain.BidStrategy
	var reason string

	switch {
	case snapshot.CPC > biddingHighCPC && campaign.BidStrategy == domain.BidStrategyLowestCost:
		newStrategy = domain.BidStrategyLowestCostWithCap
		reason = fmt.Sprintf("CPC de %.2f acima do teto pede um limite de lance", snapshot.CPC)
	case snapshot.ConversionRate < biddingLowConversionRate && snapshot.CTR > biddingMinCTR:
		newStrategy = domain.BidStrategyTargetCost
		reason = fmt.Sprintf("CTR de %.2f%% com conversão de %.2f%% indica tráfego que não converte", snapshot.CTR, snapshot.ConversionRate)
	default:
		return nil
	}

	if newStrategy == campaign.BidStrategy {
		return nil
	}

	return &domain.OptimizationProposal{
		Type: domain.OptimizationTypeBidding,
		Bidding: &domain.BiddingChange{
			Old: campaign.BidStrategy,
			New: newStrategy,
		},
		Reason:     reason,
		Confidence: confidenceOrFallback(aiConfidence, fallbackConfidenceBidding),
	}
}

// EvaluateCreatives identifica criativos com ROAS abaixo de 80% da média do
// grupo e com volume de impressões suficiente para o diagnóstico ser confiável.
// Exige pelo menos dois criativos ativos para haver comparação.
func (Rules) EvaluateCreatives(creatives []CreativePerformance) *domain.OptimizationProposal {
	if len(creatives) < creativeMinActive {
		return nil
	}

	var roasSum float64
	for _, c := range creatives {
		roasSum += c.Snapshot.ROAS
	}
	meanROAS := roasSum / float64(len(creatives))

	var pauseIDs []string
	for _, c := range creatives {
		if c.Snapshot.ROAS < meanROAS*creativeROASFactor && c.Snapshot.Impressions > creativeMinImpressions {
			pauseIDs = append(pauseIDs, c.Creative.ID)
		}
	}

	if len(pauseIDs) == 0 {
		return nil
	}

	return &domain.OptimizationProposal{
		Type: domain.OptimizationTypeCreative,
		Creative: &domain.CreativeChange{
			ActiveCreatives:  len(creatives),
			PauseCreativeIDs: pauseIDs,
			GenerateNew:      true,
		},
		Reason:     fmt.Sprintf("%d criativo(s) com ROAS abaixo de 80%% da média do grupo", len(pauseIDs)),
		Confidence: fallbackConfidenceCreative,
	}
}

// EvaluateTargeting propõe expandir ou estreitar a faixa etária da segmentação.
// A primeira condição satisfeita vence.
func (Rules) EvaluateTargeting(campaign *domain.Campaign, snapshot domain.MetricsSnapshot, aiConfidence float64) *domain.OptimizationProposal {
	current := campaign.Targeting.WithDefaults()

	switch {
	case snapshot.Frequency > targetingHighFrequency && snapshot.CTR < targetingLowCTR:
		// Público saturado: expande a faixa etária para alcançar gente nova
		proposed := current
		proposed.AgeMax = minInt(current.AgeMax+targetingExpandStep, domain.MaxAgeMax)

		if proposed.AgeMax == current.AgeMax {
			return nil
		}

		return &domain.OptimizationProposal{
			Type: domain.OptimizationTypeTargeting,
			Targeting: &domain.TargetingChange{
				Old: current,
				New: proposed,
			},
			Reason:     fmt.Sprintf("Frequência de %.2f com CTR de %.2f%% indica público saturado", snapshot.Frequency, snapshot.CTR),
			Confidence: confidenceOrFallback(aiConfidence, fallbackConfidenceTargetingExpand),
		}
	case snapshot.CTR > targetingHighCTR && snapshot.ConversionRate < targetingLowConversionRate:
		// Interesse alto sem conversão: estreita a faixa em torno do núcleo
		proposed := current
		proposed.AgeMin = maxInt(current.AgeMin+targetingNarrowStep, domain.MinAgeMin)
		proposed.AgeMax = maxInt(current.AgeMax-targetingNarrowStep, domain.MinAgeMax)

		if proposed.AgeMin == current.AgeMin && proposed.AgeMax == current.AgeMax {
			return nil
		}

		return &domain.OptimizationProposal{
			Type: domain.OptimizationTypeTargeting,
			Targeting: &domain.TargetingChange{
				Old: current,
				New: proposed,
			},
			Reason:     fmt.Sprintf("CTR de %.2f%% com conversão de %.2f%% pede um público mais específico", snapshot.CTR, snapshot.ConversionRate),
			Confidence: confidenceOrFallback(aiConfidence, fallbackConfidenceTargetingNarrow),
		}
	}

	return nil
}

func confidenceOrFallback(aiConfidence, fallback float64) float64 {
	if aiConfidence > 0 {
		return aiConfidence
	}
	return fallback
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
