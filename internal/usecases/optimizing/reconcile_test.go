package optimizing

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adnova/ads-autopilot-api/internal/domain"
)

func pendingRecord(recordType domain.OptimizationType, newValue string) *domain.OptimizationRecord {
	return &domain.OptimizationRecord{
		ID:         "OPT001",
		CampaignID: "CMP001",
		Type:       recordType,
		NewValue:   json.RawMessage(newValue),
		Status:     domain.OptimizationStatusPending,
	}
}

func TestService_ReconcilePending_OrcamentoConfirmadoNaPlataforma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()
	record := pendingRecord(domain.OptimizationTypeBudget, `{"budget": 110.00}`)

	m.optimizationRepo.EXPECT().ListPending().Return([]*domain.OptimizationRecord{record}, nil)
	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)

	// A plataforma já reflete o orçamento proposto: a mutação chegou antes da queda
	m.platform.EXPECT().
		GetCampaign("EXT001").
		Return(&domain.ExternalCampaignState{Budget: 110.00}, nil)

	m.campaignRepo.EXPECT().
		UpdateOptimizedFields(gomock.Any()).
		DoAndReturn(func(c *domain.Campaign) error {
			assert.Equal(t, 110.00, c.Budget)
			assert.NotNil(t, c.LastOptimizedAt)
			return nil
		})

	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusApplied, gomock.Not(gomock.Nil())).
		Return(nil)

	err := service.ReconcilePending(context.Background())
	assert.NoError(t, err)
}

func TestService_ReconcilePending_OrcamentoDivergenteFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()
	record := pendingRecord(domain.OptimizationTypeBudget, `{"budget": 110.00}`)

	m.optimizationRepo.EXPECT().ListPending().Return([]*domain.OptimizationRecord{record}, nil)
	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)

	// A plataforma ainda tem o orçamento antigo: a mutação nunca chegou
	m.platform.EXPECT().
		GetCampaign("EXT001").
		Return(&domain.ExternalCampaignState{Budget: 100.00}, nil)

	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusFailed, gomock.Nil()).
		Return(nil)

	err := service.ReconcilePending(context.Background())
	assert.NoError(t, err)
}

func TestService_ReconcilePending_LanceConfirmadoNaPlataforma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()
	record := pendingRecord(domain.OptimizationTypeBidding, `{"bid_strategy": "LOWEST_COST_WITH_BID_CAP"}`)

	m.optimizationRepo.EXPECT().ListPending().Return([]*domain.OptimizationRecord{record}, nil)
	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)

	m.platform.EXPECT().
		GetCampaign("EXT001").
		Return(&domain.ExternalCampaignState{BidStrategy: domain.BidStrategyLowestCostWithCap}, nil)

	m.campaignRepo.EXPECT().
		UpdateOptimizedFields(gomock.Any()).
		DoAndReturn(func(c *domain.Campaign) error {
			assert.Equal(t, domain.BidStrategyLowestCostWithCap, c.BidStrategy)
			return nil
		})

	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusApplied, gomock.Not(gomock.Nil())).
		Return(nil)

	err := service.ReconcilePending(context.Background())
	assert.NoError(t, err)
}

func TestService_ReconcilePending_SegmentacaoNaoVerificavelFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()
	record := pendingRecord(domain.OptimizationTypeTargeting, `{"targeting": {"age_min": 25, "age_max": 60}}`)

	m.optimizationRepo.EXPECT().ListPending().Return([]*domain.OptimizationRecord{record}, nil)
	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)

	// Sem consulta à plataforma: segmentação falha direto e as regras propõem de novo
	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusFailed, gomock.Nil()).
		Return(nil)

	err := service.ReconcilePending(context.Background())
	assert.NoError(t, err)
}

func TestService_ReconcilePending_CampanhaInexistenteFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	record := pendingRecord(domain.OptimizationTypeBudget, `{"budget": 110.00}`)

	m.optimizationRepo.EXPECT().ListPending().Return([]*domain.OptimizationRecord{record}, nil)
	m.campaignRepo.EXPECT().GetByID("CMP001").Return(nil, nil)

	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusFailed, gomock.Nil()).
		Return(nil)

	err := service.ReconcilePending(context.Background())
	assert.NoError(t, err)
}

func TestService_ReconcilePending_SemPendencias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	m.optimizationRepo.EXPECT().ListPending().Return(nil, nil)

	err := service.ReconcilePending(context.Background())
	assert.NoError(t, err)
}
