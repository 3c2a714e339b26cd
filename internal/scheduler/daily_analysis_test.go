package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository/mocks"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

func dailyAnalysisAppConfig() *config.Config {
	return &config.Config{
		OptimizationCycle: config.OptimizationCycle{
			RecentSampleDays: 7,
		},
	}
}

func TestDailyAnalysisService_analyzeUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Mocks
	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	// Service
	service := &DailyAnalysisService{
		config: DailyAnalysisConfig{
			DefaultSpendThreshold: 1000,
			MinSpendForRoasAlert:  100,
			RoasAlertThreshold:    1.5,
			AnalysisEnabled:       true,
		},
		appConfig:       dailyAnalysisAppConfig(),
		userRepo:        mockUserRepo,
		campaignRepo:    mockCampaignRepo,
		performanceRepo: mockPerformanceRepo,
		alertRepo:       mockAlertRepo,
	}

	campaigns := []*domain.Campaign{{ID: "CMP001", UserID: 1, Status: domain.CampaignStatusActive}}

	sample := func(spend, revenue float64) *domain.PerformanceSample {
		return &domain.PerformanceSample{
			CampaignID: "CMP001",
			Date:       time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC),
			Spend:      spend,
			Revenue:    revenue,
		}
	}

	tests := []struct {
		name  string
		user  *domain.User
		setup func()
	}{
		{
			name: "Gasto acima do limite do usuário - deve emitir alerta de orçamento",
			user: &domain.User{ID: 1, Settings: domain.UserSettings{BudgetAlertThreshold: 500}},
			setup: func() {
				mockCampaignRepo.EXPECT().ListActiveByUser(1).Return(campaigns, nil)
				mockPerformanceRepo.EXPECT().
					ListRecentByCampaign("CMP001", 7).
					Return([]*domain.PerformanceSample{sample(300, 1500), sample(300, 1500)}, nil)

				mockAlertRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(alert *domain.Alert) error {
						assert.Equal(t, domain.AlertTypeBudgetExceeded, alert.Type)
						assert.Equal(t, domain.AlertSeverityHigh, alert.Severity)
						assert.True(t, alert.ActionRequired)
						assert.Equal(t, 1, alert.UserID)
						return nil
					})
			},
		},
		{
			name: "ROAS abaixo do limite com gasto relevante - deve emitir alerta de performance",
			user: &domain.User{ID: 1},
			setup: func() {
				mockCampaignRepo.EXPECT().ListActiveByUser(1).Return(campaigns, nil)
				mockPerformanceRepo.EXPECT().
					ListRecentByCampaign("CMP001", 7).
					Return([]*domain.PerformanceSample{sample(400, 200)}, nil)

				// ROAS 0.5 e gasto 400 abaixo do limite padrão de orçamento
				mockAlertRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(alert *domain.Alert) error {
						assert.Equal(t, domain.AlertTypeLowPerformance, alert.Type)
						assert.Equal(t, domain.AlertSeverityMedium, alert.Severity)
						return nil
					})
			},
		},
		{
			name: "Gasto alto e ROAS baixo - deve emitir os dois alertas",
			user: &domain.User{ID: 1},
			setup: func() {
				mockCampaignRepo.EXPECT().ListActiveByUser(1).Return(campaigns, nil)
				mockPerformanceRepo.EXPECT().
					ListRecentByCampaign("CMP001", 7).
					Return([]*domain.PerformanceSample{sample(1200, 600)}, nil)

				mockAlertRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)
			},
		},
		{
			name: "Campanhas saudáveis - não deve emitir alerta",
			user: &domain.User{ID: 1},
			setup: func() {
				mockCampaignRepo.EXPECT().ListActiveByUser(1).Return(campaigns, nil)
				mockPerformanceRepo.EXPECT().
					ListRecentByCampaign("CMP001", 7).
					Return([]*domain.PerformanceSample{sample(200, 800)}, nil)
			},
		},
		{
			name: "Usuário sem campanhas ativas - não deve buscar amostras",
			user: &domain.User{ID: 2},
			setup: func() {
				mockCampaignRepo.EXPECT().ListActiveByUser(2).Return(nil, nil)
			},
		},
		{
			name: "Campanhas sem amostras recentes - não deve emitir alerta",
			user: &domain.User{ID: 1},
			setup: func() {
				mockCampaignRepo.EXPECT().ListActiveByUser(1).Return(campaigns, nil)
				mockPerformanceRepo.EXPECT().
					ListRecentByCampaign("CMP001", 7).
					Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.analyzeUser(tt.user)
			assert.NoError(t, err)
		})
	}
}

func TestDailyAnalysisService_analyzeAllUsers_ContinuaAposErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

	service := &DailyAnalysisService{
		config: DailyAnalysisConfig{
			DefaultSpendThreshold: 1000,
			MinSpendForRoasAlert:  100,
			RoasAlertThreshold:    1.5,
			AnalysisEnabled:       true,
		},
		appConfig:       dailyAnalysisAppConfig(),
		userRepo:        mockUserRepo,
		campaignRepo:    mockCampaignRepo,
		performanceRepo: mockPerformanceRepo,
		alertRepo:       mockAlertRepo,
	}

	users := []*domain.User{{ID: 1}, {ID: 2}}
	mockUserRepo.EXPECT().ListActiveUsers().Return(users, nil)

	// A falha na análise do primeiro usuário não deve interromper o ciclo
	mockCampaignRepo.EXPECT().ListActiveByUser(1).Return(nil, assert.AnError)
	mockCampaignRepo.EXPECT().ListActiveByUser(2).Return(nil, nil)

	service.analyzeAllUsers()

	assert.False(t, service.analysisRunning)

	status := service.GetStatus()
	startedAt, _ := status["last_analysis_started_at"].(time.Time)
	completedAt, _ := status["last_analysis_completed_at"].(time.Time)
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
}

func TestDailyAnalysisService_analyzeAllUsers_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &DailyAnalysisService{
		config:          DailyAnalysisConfig{AnalysisEnabled: true},
		appConfig:       dailyAnalysisAppConfig(),
		userRepo:        mockUserRepo,
		analysisRunning: true,
	}

	// Nenhuma chamada ao repositório deve acontecer com uma análise em andamento
	service.analyzeAllUsers()
}
