package optimizing

import (
	"context"
	"time"

	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// AdsPlatform define as operações da plataforma de anúncios usadas pelo otimizador
type AdsPlatform interface {
	// UpdateBudget altera o orçamento diário da campanha na plataforma
	UpdateBudget(externalCampaignID string, budget float64) error

	// UpdateBidStrategy altera a estratégia de lance da campanha na plataforma
	UpdateBidStrategy(externalCampaignID string, strategy domain.BidStrategy) error

	// UpdateTargeting altera a segmentação do conjunto de anúncios da campanha
	UpdateTargeting(externalAdSetID string, targeting domain.Targeting) error

	// PauseCreatives pausa os anúncios informados na plataforma
	PauseCreatives(externalAdIDs []string) error

	// GetCampaign busca o estado atual da campanha na plataforma
	GetCampaign(externalCampaignID string) (*domain.ExternalCampaignState, error)

	// GetCampaignPerformance busca as métricas de um dia de veiculação da campanha
	GetCampaignPerformance(externalCampaignID string, date time.Time) (*domain.PerformanceSample, error)
}

// PerformanceAnalyzer define a análise de performance feita pela IA
type PerformanceAnalyzer interface {
	AnalyzeCampaignPerformance(ctx context.Context, campaign *domain.Campaign, snapshot *domain.MetricsSnapshot) (*domain.PerformanceAnalysis, error)
}

// CreativeGenerator define a geração de novos criativos pela IA
type CreativeGenerator interface {
	GenerateAdCreatives(ctx context.Context, campaign *domain.Campaign, count int) ([]*domain.AdCreative, error)
}

// Optimizer é a interface completa do ciclo de otimização de campanhas
type Optimizer interface {
	// OptimizeCampaign avalia as regras e aplica as otimizações de uma campanha
	OptimizeCampaign(ctx context.Context, campaignID string) ([]*domain.OptimizationRecord, error)

	// OptimizeAllCampaigns roda o ciclo para todas as campanhas ativas publicadas
	OptimizeAllCampaigns(ctx context.Context) error

	// ReconcilePending resolve registros pendentes deixados por uma queda do processo
	ReconcilePending(ctx context.Context) error
}
