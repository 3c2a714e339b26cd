package campaigning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository/mocks"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

type reporterMocks struct {
	campaignRepo     *mocks.MockCampaignRepository
	performanceRepo  *mocks.MockPerformanceRepository
	optimizationRepo *mocks.MockOptimizationRepository
	creativeRepo     *mocks.MockCreativeRepository
	alertRepo        *mocks.MockAlertRepository
}

func newReporterForTest(ctrl *gomock.Controller) (Reporter, reporterMocks) {
	m := reporterMocks{
		campaignRepo:     mocks.NewMockCampaignRepository(ctrl),
		performanceRepo:  mocks.NewMockPerformanceRepository(ctrl),
		optimizationRepo: mocks.NewMockOptimizationRepository(ctrl),
		creativeRepo:     mocks.NewMockCreativeRepository(ctrl),
		alertRepo:        mocks.NewMockAlertRepository(ctrl),
	}

	cfg := &config.Config{
		OptimizationCycle: config.OptimizationCycle{RecentSampleDays: 7},
	}

	service := NewService(cfg, m.campaignRepo, m.performanceRepo, m.optimizationRepo, m.creativeRepo, m.alertRepo)

	return service, m
}

func TestService_GetCampaignOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterForTest(ctrl)

	campaign := &domain.Campaign{ID: "CMP001", UserID: 1, Status: domain.CampaignStatusActive}

	m.campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
	m.performanceRepo.EXPECT().
		ListRecentByCampaign("CMP001", 7).
		Return([]*domain.PerformanceSample{
			{Spend: 100, Revenue: 300, Clicks: 200, Impressions: 10000, Conversions: 10},
		}, nil)

	overview, err := service.GetCampaignOverview(1, "CMP001")

	assert.NoError(t, err)
	assert.Equal(t, campaign, overview.Campaign)
	assert.Equal(t, 3.0, overview.Metrics.ROAS)
	assert.Equal(t, 1, overview.Metrics.DaysRunning)
}

func TestService_GetCampaignOverview_CampanhaDeOutroUsuario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterForTest(ctrl)

	m.campaignRepo.EXPECT().
		GetByID("CMP001").
		Return(&domain.Campaign{ID: "CMP001", UserID: 2}, nil)

	overview, err := service.GetCampaignOverview(1, "CMP001")

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, ErrCampaignNotOwned)
}

func TestService_GetCampaignOverview_CampanhaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterForTest(ctrl)

	m.campaignRepo.EXPECT().GetByID("CMP999").Return(nil, nil)

	overview, err := service.GetCampaignOverview(1, "CMP999")

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, ErrCampaignNotOwned)
}

func TestService_ListOptimizations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterForTest(ctrl)

	m.campaignRepo.EXPECT().
		GetByID("CMP001").
		Return(&domain.Campaign{ID: "CMP001", UserID: 1}, nil)

	records := []*domain.OptimizationRecord{{ID: "OPT001", CampaignID: "CMP001"}}
	m.optimizationRepo.EXPECT().ListByCampaign("CMP001", 50).Return(records, nil)

	result, err := service.ListOptimizations(1, "CMP001", 50)

	assert.NoError(t, err)
	assert.Equal(t, records, result)
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterForTest(ctrl)

	campaigns := []*domain.Campaign{{ID: "CMP001", UserID: 1}}
	m.campaignRepo.EXPECT().ListByUser(1).Return(campaigns, nil)

	result, err := service.ListCampaigns(1)

	assert.NoError(t, err)
	assert.Equal(t, campaigns, result)
}

func TestService_MarkAlertRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newReporterForTest(ctrl)

	m.alertRepo.EXPECT().MarkRead("ALT001", 1).Return(nil)

	err := service.MarkAlertRead(1, "ALT001")
	assert.NoError(t, err)
}
