package meta

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// UpdateBudget altera o orçamento diário da campanha na plataforma.
// A API do Meta recebe o valor em centavos. A conversão arredonda em vez de
// truncar: 1.15*100 em float64 fica abaixo de 115 e a conversão direta para
// inteiro enviaria um centavo a menos.
func (s *MetaIntegrator) UpdateBudget(externalCampaignID string, budget float64) error {
	cents := int64(math.Round(budget * 100))

	fields := map[string]string{
		"daily_budget": strconv.FormatInt(cents, 10),
	}

	if err := s.Client.UpdateCampaign(externalCampaignID, fields); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": externalCampaignID,
			"budget":      budget,
			"error":       err.Error(),
		}).Error("meta: failed to update campaign budget")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": externalCampaignID,
		"budget":      budget,
	}).Info("meta: campaign budget updated")

	return nil
}

// UpdateBidStrategy altera a estratégia de lance da campanha na plataforma
func (s *MetaIntegrator) UpdateBidStrategy(externalCampaignID string, strategy domain.BidStrategy) error {
	fields := map[string]string{
		"bid_strategy": string(strategy),
	}

	if err := s.Client.UpdateCampaign(externalCampaignID, fields); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id":  externalCampaignID,
			"bid_strategy": strategy,
			"error":        err.Error(),
		}).Error("meta: failed to update campaign bid strategy")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":  externalCampaignID,
		"bid_strategy": strategy,
	}).Info("meta: campaign bid strategy updated")

	return nil
}

// UpdateTargeting altera a segmentação do conjunto de anúncios da campanha
func (s *MetaIntegrator) UpdateTargeting(externalAdSetID string, targeting domain.Targeting) error {
	fields := map[string]interface{}{
		"targeting": FactoryMetaTargeting(targeting),
	}

	if err := s.Client.UpdateAdSet(externalAdSetID, fields); err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": externalAdSetID,
			"age_min":  targeting.AgeMin,
			"age_max":  targeting.AgeMax,
			"error":    err.Error(),
		}).Error("meta: failed to update ad set targeting")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"adset_id": externalAdSetID,
		"age_min":  targeting.AgeMin,
		"age_max":  targeting.AgeMax,
	}).Info("meta: ad set targeting updated")

	return nil
}

// PauseCreatives pausa os anúncios informados na plataforma
func (s *MetaIntegrator) PauseCreatives(externalAdIDs []string) error {
	for _, adID := range externalAdIDs {
		if err := s.Client.UpdateAdStatus(adID, "PAUSED"); err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": adID,
				"error": err.Error(),
			}).Error("meta: failed to pause ad")
			return err
		}

		logrus.WithField("ad_id", adID).Info("meta: ad paused")
	}

	return nil
}

// GetCampaign busca o estado atual da campanha na plataforma
func (s *MetaIntegrator) GetCampaign(externalCampaignID string) (*domain.ExternalCampaignState, error) {
	campaign, err := s.Client.GetCampaignByID(externalCampaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": externalCampaignID,
			"error":       err.Error(),
		}).Error("meta: failed to get campaign from API")
		return nil, err
	}

	state := &domain.ExternalCampaignState{
		ExternalID:  campaign.ID,
		Status:      campaign.Status,
		BidStrategy: domain.BidStrategy(campaign.BidStrategy),
	}

	// A API retorna o orçamento diário em centavos, como texto
	if campaign.DailyBudget != "" {
		cents, err := strconv.ParseInt(campaign.DailyBudget, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("orçamento diário inválido retornado pela API: %w", err)
		}
		state.Budget = float64(cents) / 100
	}

	return state, nil
}

// GetCampaignPerformance busca as métricas de um dia de veiculação da campanha
func (s *MetaIntegrator) GetCampaignPerformance(externalCampaignID string, date time.Time) (*domain.PerformanceSample, error) {
	filters := &domain.InsightFilters{
		StartDate: date,
		EndDate:   date,
	}

	insights, err := s.Client.GetCampaignInsights(externalCampaignID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": externalCampaignID,
			"date":        date.Format(time.DateOnly),
			"error":       err.Error(),
		}).Error("meta: failed to get campaign insights from API")
		return nil, err
	}

	if len(insights) == 0 {
		return nil, nil
	}

	sample := FactoryPerformanceSample(&insights[0], date)

	logrus.WithFields(logrus.Fields{
		"campaign_id": externalCampaignID,
		"date":        date.Format(time.DateOnly),
		"spend":       sample.Spend,
	}).Debug("meta: successfully retrieved campaign performance")

	return sample, nil
}

// FactoryMetaTargeting converte a segmentação do domínio para o formato da API do Meta
func FactoryMetaTargeting(targeting domain.Targeting) *metadomain.Targeting {
	t := targeting.WithDefaults()

	metaTargeting := &metadomain.Targeting{
		AgeMin: t.AgeMin,
		AgeMax: t.AgeMax,
	}

	// Na API do Meta os gêneros são numéricos: 1 masculino, 2 feminino
	for _, gender := range t.Genders {
		switch gender {
		case "male":
			metaTargeting.Genders = append(metaTargeting.Genders, 1)
		case "female":
			metaTargeting.Genders = append(metaTargeting.Genders, 2)
		}
	}

	if len(t.Countries) > 0 {
		metaTargeting.GeoLocations = &metadomain.GeoLocations{
			Countries: t.Countries,
		}
	}

	for _, interest := range t.Interests {
		metaTargeting.Interests = append(metaTargeting.Interests, metadomain.TargetDetail{
			Name: interest,
		})
	}

	return metaTargeting
}

// FactoryPerformanceSample converte um insight da API do Meta em uma amostra de performance
func FactoryPerformanceSample(insight *metadomain.Insight, date time.Time) *domain.PerformanceSample {
	sample := &domain.PerformanceSample{
		CampaignID: insight.CampaignID,
		Date:       date,
	}

	sample.Impressions = parseIntField(insight.Impressions)
	sample.Clicks = parseIntField(insight.Clicks)
	sample.Reach = parseIntField(insight.Reach)
	sample.Spend = parseFloatField(insight.Spend)
	sample.Frequency = parseFloatField(insight.Frequency)

	for _, action := range insight.Actions {
		if action.ActionType == "purchase" || action.ActionType == "offsite_conversion.fb_pixel_purchase" {
			sample.Conversions += parseIntField(action.Value)
		}
	}

	return sample
}

// parseIntField converte os campos numéricos que a API retorna como texto
func parseIntField(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("value", value).Warn("meta: unexpected numeric field format")
		return 0
	}

	return parsed
}

func parseFloatField(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithField("value", value).Warn("meta: unexpected numeric field format")
		return 0
	}

	return parsed
}
