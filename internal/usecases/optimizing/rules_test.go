package optimizing

import (
	"testing"

	"github.com/adnova/ads-autopilot-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_EvaluateBudget(t *testing.T) {
	rules := Rules{}

	tests := []struct {
		name         string
		budget       float64
		snapshot     domain.MetricsSnapshot
		aiConfidence float64
		wantBudget   *float64
		wantConf     float64
	}{
		{
			name:       "ROAS alto sustentado deve aumentar o orçamento",
			budget:     100.00,
			snapshot:   domain.MetricsSnapshot{ROAS: 5.0, DaysRunning: 3},
			wantBudget: floatPtr(110.00), // +min((5.0-4.0)*0.10, 0.50) = +10%
			wantConf:   75,
		},
		{
			name:       "Aumento limitado a 50% mesmo com ROAS muito alto",
			budget:     100.00,
			snapshot:   domain.MetricsSnapshot{ROAS: 20.0, DaysRunning: 5},
			wantBudget: floatPtr(150.00),
			wantConf:   75,
		},
		{
			name:       "ROAS baixo deve reduzir o orçamento",
			budget:     100.00,
			snapshot:   domain.MetricsSnapshot{ROAS: 0.5, DaysRunning: 2},
			wantBudget: floatPtr(90.00), // -min((1.5-0.5)*0.10, 0.30) = -10%
			wantConf:   75,
		},
		{
			name:       "Redução limitada a 30% mesmo com ROAS zerado",
			budget:     100.00,
			snapshot:   domain.MetricsSnapshot{ROAS: -2.0, DaysRunning: 4},
			wantBudget: floatPtr(70.00),
			wantConf:   75,
		},
		{
			name:     "ROAS alto sem dias suficientes não propõe nada",
			budget:   100.00,
			snapshot: domain.MetricsSnapshot{ROAS: 5.0, DaysRunning: 2},
		},
		{
			name:     "ROAS intermediário não propõe nada",
			budget:   100.00,
			snapshot: domain.MetricsSnapshot{ROAS: 2.5, DaysRunning: 10},
		},
		{
			name:     "Proposta igual ao orçamento atual após arredondamento é descartada",
			budget:   0.00,
			snapshot: domain.MetricsSnapshot{ROAS: 5.0, DaysRunning: 3},
		},
		{
			name:         "Confiança da IA substitui o fallback",
			budget:       100.00,
			snapshot:     domain.MetricsSnapshot{ROAS: 5.0, DaysRunning: 3},
			aiConfidence: 92,
			wantBudget:   floatPtr(110.00),
			wantConf:     92,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := &domain.Campaign{ID: "CMP001", Budget: tt.budget}

			proposal := rules.EvaluateBudget(campaign, tt.snapshot, tt.aiConfidence)

			if tt.wantBudget == nil {
				assert.Nil(t, proposal)
				return
			}

			require.NotNil(t, proposal)
			assert.Equal(t, domain.OptimizationTypeBudget, proposal.Type)
			require.NotNil(t, proposal.Budget)
			assert.Equal(t, tt.budget, proposal.Budget.Old)
			assert.InDelta(t, *tt.wantBudget, proposal.Budget.New, 0.001)
			assert.Equal(t, tt.wantConf, proposal.Confidence)
			assert.NotEmpty(t, proposal.Reason)
		})
	}
}

func TestRules_EvaluateBidding(t *testing.T) {
	rules := Rules{}

	tests := []struct {
		name         string
		strategy     domain.BidStrategy
		snapshot     domain.MetricsSnapshot
		wantStrategy domain.BidStrategy
	}{
		{
			name:         "CPC alto com lance automático deve adotar teto de lance",
			strategy:     domain.BidStrategyLowestCost,
			snapshot:     domain.MetricsSnapshot{CPC: 3.5},
			wantStrategy: domain.BidStrategyLowestCostWithCap,
		},
		{
			name:     "CPC alto com teto já aplicado não propõe nada",
			strategy: domain.BidStrategyLowestCostWithCap,
			snapshot: domain.MetricsSnapshot{CPC: 3.5},
		},
		{
			name:         "Tráfego que não converte deve adotar custo alvo",
			strategy:     domain.BidStrategyLowestCost,
			snapshot:     domain.MetricsSnapshot{CPC: 1.0, ConversionRate: 0.5, CTR: 1.5},
			wantStrategy: domain.BidStrategyTargetCost,
		},
		{
			name:     "CPC alto vence a regra de conversão quando ambas se aplicam",
			strategy: domain.BidStrategyLowestCost,
			snapshot: domain.MetricsSnapshot{CPC: 4.0, ConversionRate: 0.5, CTR: 1.5},
			// primeira condição satisfeita vence
			wantStrategy: domain.BidStrategyLowestCostWithCap,
		},
		{
			name:     "Métricas saudáveis não propõem nada",
			strategy: domain.BidStrategyLowestCost,
			snapshot: domain.MetricsSnapshot{CPC: 1.0, ConversionRate: 2.0, CTR: 1.5},
		},
		{
			name:     "Custo alvo já aplicado não propõe nada",
			strategy: domain.BidStrategyTargetCost,
			snapshot: domain.MetricsSnapshot{CPC: 1.0, ConversionRate: 0.5, CTR: 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := &domain.Campaign{ID: "CMP001", BidStrategy: tt.strategy}

			proposal := rules.EvaluateBidding(campaign, tt.snapshot, 0)

			if tt.wantStrategy == "" {
				assert.Nil(t, proposal)
				return
			}

			require.NotNil(t, proposal)
			assert.Equal(t, domain.OptimizationTypeBidding, proposal.Type)
			require.NotNil(t, proposal.Bidding)
			assert.Equal(t, tt.strategy, proposal.Bidding.Old)
			assert.Equal(t, tt.wantStrategy, proposal.Bidding.New)
			assert.Equal(t, float64(fallbackConfidenceBidding), proposal.Confidence)
		})
	}
}

func TestRules_EvaluateCreatives(t *testing.T) {
	rules := Rules{}

	creative := func(id string, roas float64, impressions int) CreativePerformance {
		return CreativePerformance{
			Creative: &domain.AdCreative{ID: id},
			Snapshot: domain.MetricsSnapshot{ROAS: roas, Impressions: impressions},
		}
	}

	t.Run("Criativo abaixo de 80% da média com volume deve ser pausado", func(t *testing.T) {
		// média = 2.0; limiar = 1.6
		proposal := rules.EvaluateCreatives([]CreativePerformance{
			creative("CR001", 3.0, 5000),
			creative("CR002", 1.0, 5000),
		})

		require.NotNil(t, proposal)
		assert.Equal(t, domain.OptimizationTypeCreative, proposal.Type)
		require.NotNil(t, proposal.Creative)
		assert.Equal(t, []string{"CR002"}, proposal.Creative.PauseCreativeIDs)
		assert.Equal(t, 2, proposal.Creative.ActiveCreatives)
		assert.True(t, proposal.Creative.GenerateNew)
	})

	t.Run("Criativo ruim sem volume de impressões não é pausado", func(t *testing.T) {
		proposal := rules.EvaluateCreatives([]CreativePerformance{
			creative("CR001", 3.0, 5000),
			creative("CR002", 1.0, 800),
		})

		assert.Nil(t, proposal)
	})

	t.Run("Um único criativo ativo não tem comparação", func(t *testing.T) {
		proposal := rules.EvaluateCreatives([]CreativePerformance{
			creative("CR001", 0.1, 50000),
		})

		assert.Nil(t, proposal)
	})

	t.Run("Criativos equilibrados não propõem nada", func(t *testing.T) {
		proposal := rules.EvaluateCreatives([]CreativePerformance{
			creative("CR001", 2.0, 5000),
			creative("CR002", 2.1, 5000),
			creative("CR003", 1.9, 5000),
		})

		assert.Nil(t, proposal)
	})
}

func TestRules_EvaluateTargeting(t *testing.T) {
	rules := Rules{}

	t.Run("Público saturado expande a faixa etária", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:        "CMP001",
			Targeting: domain.Targeting{AgeMin: 25, AgeMax: 45},
		}
		snapshot := domain.MetricsSnapshot{Frequency: 3.5, CTR: 1.0}

		proposal := rules.EvaluateTargeting(campaign, snapshot, 0)

		require.NotNil(t, proposal)
		assert.Equal(t, domain.OptimizationTypeTargeting, proposal.Type)
		require.NotNil(t, proposal.Targeting)
		assert.Equal(t, 45, proposal.Targeting.Old.AgeMax)
		assert.Equal(t, 50, proposal.Targeting.New.AgeMax)
		assert.Equal(t, 25, proposal.Targeting.New.AgeMin)
		assert.Equal(t, float64(fallbackConfidenceTargetingExpand), proposal.Confidence)
	})

	t.Run("Expansão respeita o teto de 65 anos", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:        "CMP001",
			Targeting: domain.Targeting{AgeMin: 25, AgeMax: 63},
		}
		snapshot := domain.MetricsSnapshot{Frequency: 3.5, CTR: 1.0}

		proposal := rules.EvaluateTargeting(campaign, snapshot, 0)

		require.NotNil(t, proposal)
		assert.Equal(t, domain.MaxAgeMax, proposal.Targeting.New.AgeMax)
	})

	t.Run("Faixa já no teto não propõe nada", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:        "CMP001",
			Targeting: domain.Targeting{AgeMin: 25, AgeMax: 65},
		}
		snapshot := domain.MetricsSnapshot{Frequency: 3.5, CTR: 1.0}

		assert.Nil(t, rules.EvaluateTargeting(campaign, snapshot, 0))
	})

	t.Run("Interesse alto sem conversão estreita a faixa etária", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:        "CMP001",
			Targeting: domain.Targeting{AgeMin: 20, AgeMax: 50},
		}
		snapshot := domain.MetricsSnapshot{CTR: 2.5, ConversionRate: 1.0}

		proposal := rules.EvaluateTargeting(campaign, snapshot, 0)

		require.NotNil(t, proposal)
		assert.Equal(t, 22, proposal.Targeting.New.AgeMin)
		assert.Equal(t, 48, proposal.Targeting.New.AgeMax)
		assert.Equal(t, float64(fallbackConfidenceTargetingNarrow), proposal.Confidence)
	})

	t.Run("Estreitamento respeita o piso da faixa", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:        "CMP001",
			Targeting: domain.Targeting{AgeMin: 18, AgeMax: 26},
		}
		snapshot := domain.MetricsSnapshot{CTR: 2.5, ConversionRate: 1.0}

		proposal := rules.EvaluateTargeting(campaign, snapshot, 0)

		require.NotNil(t, proposal)
		assert.Equal(t, 20, proposal.Targeting.New.AgeMin)
		assert.Equal(t, domain.MinAgeMax, proposal.Targeting.New.AgeMax)
	})

	t.Run("Segmentação sem faixa informada usa os padrões", func(t *testing.T) {
		campaign := &domain.Campaign{ID: "CMP001"}
		snapshot := domain.MetricsSnapshot{Frequency: 3.5, CTR: 1.0}

		proposal := rules.EvaluateTargeting(campaign, snapshot, 0)

		require.NotNil(t, proposal)
		assert.Equal(t, domain.DefaultAgeMin, proposal.Targeting.Old.AgeMin)
		assert.Equal(t, domain.DefaultAgeMax, proposal.Targeting.Old.AgeMax)
		assert.Equal(t, domain.DefaultAgeMax+targetingExpandStep, proposal.Targeting.New.AgeMax)
	})

	t.Run("Métricas saudáveis não propõem nada", func(t *testing.T) {
		campaign := &domain.Campaign{
			ID:        "CMP001",
			Targeting: domain.Targeting{AgeMin: 25, AgeMax: 45},
		}
		snapshot := domain.MetricsSnapshot{Frequency: 1.5, CTR: 1.8, ConversionRate: 2.0}

		assert.Nil(t, rules.EvaluateTargeting(campaign, snapshot, 0))
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
