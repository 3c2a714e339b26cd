package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	shopifydomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/domain"
	"github.com/adnova/ads-autopilot-api/infrastructure/repository/mocks"
	"github.com/adnova/ads-autopilot-api/internal/domain"
	schedulermocks "github.com/adnova/ads-autopilot-api/internal/scheduler/mocks"
)

func stringPtr(s string) *string {
	return &s
}

func TestPerformanceSyncService_syncCampaign(t *testing.T) {
	campaign := &domain.Campaign{
		ID:                 "CMP001",
		UserID:             1,
		Status:             domain.CampaignStatusActive,
		ExternalCampaignID: stringPtr("EXT001"),
	}

	userWithShop := &domain.User{
		ID:           1,
		ShopDomain:   "loja-exemplo.myshopify.com",
		ShopifyToken: "shpat_token",
	}

	tests := []struct {
		name    string
		setup   func(m *syncMocks)
		wantErr bool
	}{
		{
			name: "Coleta com sucesso - deve gravar a amostra com a receita atribuída",
			setup: func(m *syncMocks) {
				m.metricsFetcher.EXPECT().
					GetCampaignPerformance("EXT001", gomock.Any()).
					Return(&domain.PerformanceSample{Impressions: 5000, Clicks: 120, Spend: 80}, nil)

				m.userRepo.EXPECT().GetUserByID(1).Return(userWithShop, nil)

				m.revenueAttributor.EXPECT().
					GetAttributedRevenue(gomock.Any(), "CMP001", gomock.Any()).
					DoAndReturn(func(params shopifydomain.GetOrdersParams, campaignID string, filters *domain.InsightFilters) (float64, error) {
						assert.Equal(t, "loja-exemplo.myshopify.com", params.ShopDomain)
						assert.Equal(t, "shpat_token", params.AccessToken)
						return 320.0, nil
					})

				m.performanceRepo.EXPECT().
					Append(gomock.Any()).
					DoAndReturn(func(sample *domain.PerformanceSample) error {
						assert.Equal(t, "CMP001", sample.CampaignID)
						assert.Equal(t, 320.0, sample.Revenue)
						return nil
					})

				m.campaignRepo.EXPECT().UpdateLastSyncedAt("CMP001", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Campanha sem veiculação na data - não deve gravar nada",
			setup: func(m *syncMocks) {
				m.metricsFetcher.EXPECT().
					GetCampaignPerformance("EXT001", gomock.Any()).
					Return(nil, nil)
			},
		},
		{
			name: "Usuário sem loja conectada - deve gravar a amostra com receita zero",
			setup: func(m *syncMocks) {
				m.metricsFetcher.EXPECT().
					GetCampaignPerformance("EXT001", gomock.Any()).
					Return(&domain.PerformanceSample{Impressions: 5000, Spend: 80}, nil)

				m.userRepo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1}, nil)

				m.performanceRepo.EXPECT().
					Append(gomock.Any()).
					DoAndReturn(func(sample *domain.PerformanceSample) error {
						assert.Equal(t, 0.0, sample.Revenue)
						return nil
					})

				m.campaignRepo.EXPECT().UpdateLastSyncedAt("CMP001", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Erro na atribuição de receita - deve gravar a amostra com receita zero",
			setup: func(m *syncMocks) {
				m.metricsFetcher.EXPECT().
					GetCampaignPerformance("EXT001", gomock.Any()).
					Return(&domain.PerformanceSample{Impressions: 5000, Spend: 80}, nil)

				m.userRepo.EXPECT().GetUserByID(1).Return(userWithShop, nil)

				m.revenueAttributor.EXPECT().
					GetAttributedRevenue(gomock.Any(), "CMP001", gomock.Any()).
					Return(0.0, assert.AnError)

				m.performanceRepo.EXPECT().
					Append(gomock.Any()).
					DoAndReturn(func(sample *domain.PerformanceSample) error {
						assert.Equal(t, 0.0, sample.Revenue)
						return nil
					})

				m.campaignRepo.EXPECT().UpdateLastSyncedAt("CMP001", gomock.Any()).Return(nil)
			},
		},
		{
			name: "Erro ao buscar métricas na plataforma - deve retornar erro",
			setup: func(m *syncMocks) {
				m.metricsFetcher.EXPECT().
					GetCampaignPerformance("EXT001", gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newSyncServiceForTest(ctrl)
			tt.setup(m)

			err := service.syncCampaign(campaign)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPerformanceSyncService_syncAllCampaigns_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newSyncServiceForTest(ctrl)
	service.syncRunning = true

	// Nenhuma chamada ao repositório deve acontecer com uma coleta em andamento
	service.syncAllCampaigns()
}

func TestPerformanceSyncService_syncAllCampaigns_AtualizaStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSyncServiceForTest(ctrl)

	campaigns := []*domain.Campaign{
		{ID: "CMP001", UserID: 1, ExternalCampaignID: stringPtr("EXT001")},
	}
	m.campaignRepo.EXPECT().ListActiveWithExternalRef().Return(campaigns, nil)

	// Campanha sem veiculação na data: nada a gravar, mas a coleta conclui
	m.metricsFetcher.EXPECT().GetCampaignPerformance("EXT001", gomock.Any()).Return(nil, nil)

	service.syncAllCampaigns()

	assert.False(t, service.syncRunning)

	status := service.GetStatus()
	startedAt, _ := status["last_sync_started_at"].(time.Time)
	completedAt, _ := status["last_sync_completed_at"].(time.Time)
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
}

type syncMocks struct {
	campaignRepo      *mocks.MockCampaignRepository
	performanceRepo   *mocks.MockPerformanceRepository
	userRepo          *mocks.MockUserRepository
	metricsFetcher    *schedulermocks.MockMetricsFetcher
	revenueAttributor *schedulermocks.MockRevenueAttributor
}

func newSyncServiceForTest(ctrl *gomock.Controller) (*PerformanceSyncService, *syncMocks) {
	m := &syncMocks{
		campaignRepo:      mocks.NewMockCampaignRepository(ctrl),
		performanceRepo:   mocks.NewMockPerformanceRepository(ctrl),
		userRepo:          mocks.NewMockUserRepository(ctrl),
		metricsFetcher:    schedulermocks.NewMockMetricsFetcher(ctrl),
		revenueAttributor: schedulermocks.NewMockRevenueAttributor(ctrl),
	}

	service := &PerformanceSyncService{
		config: PerformanceSyncConfig{
			RequestDelaySeconds: 0,
			SyncEnabled:         true,
		},
		campaignRepo:      m.campaignRepo,
		performanceRepo:   m.performanceRepo,
		userRepo:          m.userRepo,
		metricsFetcher:    m.metricsFetcher,
		revenueAttributor: m.revenueAttributor,
	}

	return service, m
}
