package optimizing

import (
	"context"
	"errors"
	"testing"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository/mocks"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
	optimizingmocks "github.com/adnova/ads-autopilot-api/internal/usecases/optimizing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type optimizerMocks struct {
	campaignRepo     *mocks.MockCampaignRepository
	performanceRepo  *mocks.MockPerformanceRepository
	optimizationRepo *mocks.MockOptimizationRepository
	alertRepo        *mocks.MockAlertRepository
	creativeRepo     *mocks.MockCreativeRepository
	platform         *optimizingmocks.MockAdsPlatform
	analyzer         *optimizingmocks.MockPerformanceAnalyzer
	generator        *optimizingmocks.MockCreativeGenerator
}

func newOptimizerForTest(ctrl *gomock.Controller) (Optimizer, optimizerMocks) {
	m := optimizerMocks{
		campaignRepo:     mocks.NewMockCampaignRepository(ctrl),
		performanceRepo:  mocks.NewMockPerformanceRepository(ctrl),
		optimizationRepo: mocks.NewMockOptimizationRepository(ctrl),
		alertRepo:        mocks.NewMockAlertRepository(ctrl),
		creativeRepo:     mocks.NewMockCreativeRepository(ctrl),
		platform:         optimizingmocks.NewMockAdsPlatform(ctrl),
		analyzer:         optimizingmocks.NewMockPerformanceAnalyzer(ctrl),
		generator:        optimizingmocks.NewMockCreativeGenerator(ctrl),
	}

	cfg := &config.Config{
		OptimizationCycle: config.OptimizationCycle{
			RecentSampleDays: 7,
			MinSamples:       3,
		},
	}

	service := NewService(
		cfg,
		m.campaignRepo,
		m.performanceRepo,
		m.optimizationRepo,
		m.alertRepo,
		m.creativeRepo,
		m.platform,
		m.analyzer,
		m.generator,
	)

	return service, m
}

func publishedCampaign() *domain.Campaign {
	external := "EXT001"
	adset := "ADSET001"
	return &domain.Campaign{
		ID:                 "CMP001",
		UserID:             1,
		Name:               "Campanha Teste",
		Status:             domain.CampaignStatusActive,
		Budget:             100.00,
		BidStrategy:        domain.BidStrategyLowestCost,
		Targeting:          domain.Targeting{AgeMin: 25, AgeMax: 45},
		ExternalCampaignID: &external,
		ExternalAdSetID:    &adset,
	}
}

// amostras com ROAS 5 sustentado e demais métricas saudáveis: apenas a regra
// de orçamento deve disparar
func highROASSamples() []*domain.PerformanceSample {
	samples := make([]*domain.PerformanceSample, 0, 3)
	for i := 0; i < 3; i++ {
		samples = append(samples, &domain.PerformanceSample{
			CampaignID:  "CMP001",
			Spend:       50,
			Revenue:     250,
			Clicks:      100,
			Impressions: 8000,
			Conversions: 5,
			Frequency:   1.2,
		})
	}
	return samples
}

func TestService_OptimizeCampaign_AppliesBudgetIncrease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
	m.performanceRepo.EXPECT().ListRecentByCampaign("CMP001", 7).Return(highROASSamples(), nil)

	// IA indisponível: as regras usam a confiança padrão
	m.analyzer.EXPECT().
		AnalyzeCampaignPerformance(gomock.Any(), campaign, gomock.Any()).
		Return(nil, errors.New("modelo indisponível"))

	// um único criativo ativo: regra de criativos não dispara
	m.creativeRepo.EXPECT().ListActiveByCampaign("CMP001").Return(nil, nil)

	m.optimizationRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(record *domain.OptimizationRecord) error {
			record.ID = "OPT001"
			assert.Equal(t, domain.OptimizationStatusPending, record.Status)
			assert.Equal(t, domain.OptimizationTypeBudget, record.Type)
			return nil
		})

	m.platform.EXPECT().UpdateBudget("EXT001", 110.00).Return(nil)

	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusApplied, gomock.Not(gomock.Nil())).
		Return(nil)

	m.campaignRepo.EXPECT().
		UpdateOptimizedFields(campaign).
		DoAndReturn(func(c *domain.Campaign) error {
			assert.Equal(t, 110.00, c.Budget)
			assert.NotNil(t, c.LastOptimizedAt)
			return nil
		})

	m.alertRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(alert *domain.Alert) error {
			assert.Equal(t, domain.AlertTypeOptimizationApplied, alert.Type)
			assert.Equal(t, domain.AlertSeverityMedium, alert.Severity)
			assert.False(t, alert.ActionRequired)
			require.NotNil(t, alert.CampaignID)
			assert.Equal(t, "CMP001", *alert.CampaignID)
			return nil
		})

	records, err := service.OptimizeCampaign(context.Background(), "CMP001")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.OptimizationStatusApplied, records[0].Status)
	assert.NotNil(t, records[0].AppliedAt)
}

func TestService_OptimizeCampaign_PlatformFailureLeavesCampaignUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
	m.performanceRepo.EXPECT().ListRecentByCampaign("CMP001", 7).Return(highROASSamples(), nil)
	m.analyzer.EXPECT().
		AnalyzeCampaignPerformance(gomock.Any(), campaign, gomock.Any()).
		Return(nil, errors.New("modelo indisponível"))
	m.creativeRepo.EXPECT().ListActiveByCampaign("CMP001").Return(nil, nil)

	m.optimizationRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(record *domain.OptimizationRecord) error {
			record.ID = "OPT001"
			return nil
		})

	m.platform.EXPECT().UpdateBudget("EXT001", 110.00).Return(errors.New("erro da plataforma"))

	// registro fechado como falho, sem data de aplicação e sem alerta
	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT001", domain.OptimizationStatusFailed, gomock.Nil()).
		Return(nil)

	records, err := service.OptimizeCampaign(context.Background(), "CMP001")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 100.00, campaign.Budget)
	assert.Nil(t, campaign.LastOptimizedAt)
}

func TestService_OptimizeCampaign_SkipsIneligibleCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)

	campaign := publishedCampaign()
	campaign.Status = domain.CampaignStatusPaused

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)

	records, err := service.OptimizeCampaign(context.Background(), "CMP001")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_OptimizeCampaign_SkipsDraftCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)

	campaign := publishedCampaign()
	campaign.ExternalCampaignID = nil

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)

	records, err := service.OptimizeCampaign(context.Background(), "CMP001")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_OptimizeCampaign_NotEnoughSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
	m.performanceRepo.EXPECT().
		ListRecentByCampaign("CMP001", 7).
		Return(highROASSamples()[:2], nil)

	records, err := service.OptimizeCampaign(context.Background(), "CMP001")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_OptimizeAllCampaigns_FailureDoesNotStopCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)

	broken := publishedCampaign()
	broken.ID = "CMP001"

	healthy := publishedCampaign()
	healthy.ID = "CMP002"

	m.campaignRepo.EXPECT().
		ListActiveWithExternalRef().
		Return([]*domain.Campaign{broken, healthy}, nil)

	// a primeira campanha falha na consulta, a segunda segue o ciclo
	m.campaignRepo.EXPECT().GetByID("CMP001").Return(nil, errors.New("erro no banco"))

	m.campaignRepo.EXPECT().GetByID("CMP002").Return(healthy, nil)
	m.performanceRepo.EXPECT().ListRecentByCampaign("CMP002", 7).Return(nil, nil)

	err := service.OptimizeAllCampaigns(context.Background())

	require.NoError(t, err)
}

func TestService_OptimizeAllCampaigns_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)

	m.campaignRepo.EXPECT().
		ListActiveWithExternalRef().
		Return([]*domain.Campaign{publishedCampaign()}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.OptimizeAllCampaigns(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_OptimizeCampaign_PausesWorstCreativeAndRegenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newOptimizerForTest(ctrl)
	campaign := publishedCampaign()

	// métricas neutras: nenhuma regra de orçamento, lance ou segmentação dispara
	samples := []*domain.PerformanceSample{
		{CampaignID: "CMP001", Spend: 100, Revenue: 250, Clicks: 100, Impressions: 8000, Conversions: 5, Frequency: 1.2},
		{CampaignID: "CMP001", Spend: 100, Revenue: 250, Clicks: 100, Impressions: 8000, Conversions: 5, Frequency: 1.2},
		{CampaignID: "CMP001", Spend: 100, Revenue: 250, Clicks: 100, Impressions: 8000, Conversions: 5, Frequency: 1.2},
	}

	winnerExternal := "AD100"
	loserExternal := "AD200"
	winner := &domain.AdCreative{ID: "CR001", CampaignID: "CMP001", ExternalID: &winnerExternal, Status: domain.CreativeStatusActive}
	loser := &domain.AdCreative{ID: "CR002", CampaignID: "CMP001", ExternalID: &loserExternal, Status: domain.CreativeStatusActive}

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
	m.performanceRepo.EXPECT().ListRecentByCampaign("CMP001", 7).Return(samples, nil)
	m.analyzer.EXPECT().
		AnalyzeCampaignPerformance(gomock.Any(), campaign, gomock.Any()).
		Return(nil, errors.New("modelo indisponível"))

	// duas listagens: uma para avaliar a regra, outra ao aplicar a mudança
	m.creativeRepo.EXPECT().
		ListActiveByCampaign("CMP001").
		Return([]*domain.AdCreative{winner, loser}, nil).
		Times(2)

	m.performanceRepo.EXPECT().
		ListRecentByCreative("CR001", 7).
		Return([]*domain.PerformanceSample{
			{CreativeID: &winner.ID, Spend: 50, Revenue: 250, Impressions: 4000, Clicks: 50},
		}, nil)
	m.performanceRepo.EXPECT().
		ListRecentByCreative("CR002", 7).
		Return([]*domain.PerformanceSample{
			{CreativeID: &loser.ID, Spend: 50, Revenue: 50, Impressions: 4000, Clicks: 50},
		}, nil)

	m.optimizationRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(record *domain.OptimizationRecord) error {
			record.ID = "OPT002"
			assert.Equal(t, domain.OptimizationTypeCreative, record.Type)
			return nil
		})

	m.platform.EXPECT().PauseCreatives([]string{"AD200"}).Return(nil)
	m.creativeRepo.EXPECT().UpdateStatus([]string{"CR002"}, domain.CreativeStatusPaused).Return(nil)

	replacement := &domain.AdCreative{CampaignID: "CMP001", Headline: "Novo criativo"}
	m.generator.EXPECT().
		GenerateAdCreatives(gomock.Any(), campaign, 1).
		Return([]*domain.AdCreative{replacement}, nil)
	m.creativeRepo.EXPECT().Save(replacement).Return(nil)

	m.optimizationRepo.EXPECT().
		UpdateStatus("OPT002", domain.OptimizationStatusApplied, gomock.Not(gomock.Nil())).
		Return(nil)
	m.campaignRepo.EXPECT().UpdateOptimizedFields(campaign).Return(nil)
	m.alertRepo.EXPECT().Create(gomock.Any()).Return(nil)

	records, err := service.OptimizeCampaign(context.Background(), "CMP001")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.OptimizationStatusApplied, records[0].Status)
}
