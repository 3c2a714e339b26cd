package meta

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/mocks"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

func TestMetaIntegrator_UpdateBudget_ConversaoParaCentavos(t *testing.T) {
	// Valores cujo produto por 100 fica logo abaixo do inteiro em float64:
	// a conversão truncada enviaria um centavo a menos
	tests := []struct {
		budget    float64
		wantCents string
	}{
		{budget: 0.29, wantCents: "29"},
		{budget: 1.15, wantCents: "115"},
		{budget: 2.01, wantCents: "201"},
		{budget: 110.00, wantCents: "11000"},
		{budget: 33.33, wantCents: "3333"},
		{budget: 19999.99, wantCents: "1999999"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f", tt.budget), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			integrator := New(&config.Config{}, mockClient)

			mockClient.EXPECT().
				UpdateCampaign("EXT001", gomock.Any()).
				DoAndReturn(func(campaignID string, fields map[string]string) error {
					assert.Equal(t, tt.wantCents, fields["daily_budget"])
					return nil
				})

			err := integrator.UpdateBudget("EXT001", tt.budget)
			assert.NoError(t, err)
		})
	}
}

func TestMetaIntegrator_GetCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetCampaignByID("EXT001").
		Return(&metadomain.Campaign{
			ID:          "EXT001",
			Status:      "ACTIVE",
			DailyBudget: "11500",
			BidStrategy: "LOWEST_COST_WITHOUT_CAP",
		}, nil)

	state, err := integrator.GetCampaign("EXT001")

	require.NoError(t, err)
	assert.Equal(t, 115.00, state.Budget)
	assert.Equal(t, domain.BidStrategyLowestCost, state.BidStrategy)
}

func TestMetaIntegrator_GetCampaign_OrcamentoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().
		GetCampaignByID("EXT001").
		Return(&metadomain.Campaign{ID: "EXT001", DailyBudget: "abc"}, nil)

	state, err := integrator.GetCampaign("EXT001")

	assert.Error(t, err)
	assert.Nil(t, state)
}

func TestFactoryMetaTargeting(t *testing.T) {
	targeting := domain.Targeting{
		AgeMin:    25,
		AgeMax:    45,
		Genders:   []string{"male", "female"},
		Countries: []string{"BR"},
		Interests: []string{"moda"},
	}

	metaTargeting := FactoryMetaTargeting(targeting)

	assert.Equal(t, 25, metaTargeting.AgeMin)
	assert.Equal(t, 45, metaTargeting.AgeMax)
	assert.Equal(t, []int{1, 2}, metaTargeting.Genders)
	require.NotNil(t, metaTargeting.GeoLocations)
	assert.Equal(t, []string{"BR"}, metaTargeting.GeoLocations.Countries)
	require.Len(t, metaTargeting.Interests, 1)
	assert.Equal(t, "moda", metaTargeting.Interests[0].Name)
}

func TestFactoryPerformanceSample(t *testing.T) {
	date := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)

	insight := &metadomain.Insight{
		CampaignID:  "EXT001",
		Impressions: "5000",
		Clicks:      "120",
		Spend:       "80.50",
		Reach:       "4100",
		Frequency:   "1.22",
		Actions: []metadomain.ActionValue{
			{ActionType: "purchase", Value: "3"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "2"},
			{ActionType: "link_click", Value: "90"},
		},
	}

	sample := FactoryPerformanceSample(insight, date)

	assert.Equal(t, "EXT001", sample.CampaignID)
	assert.Equal(t, date, sample.Date)
	assert.Equal(t, 5000, sample.Impressions)
	assert.Equal(t, 120, sample.Clicks)
	assert.Equal(t, 80.50, sample.Spend)
	assert.Equal(t, 4100, sample.Reach)
	assert.Equal(t, 1.22, sample.Frequency)
	assert.Equal(t, 5, sample.Conversions)
}
