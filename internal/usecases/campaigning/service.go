package campaigning

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// CampaignOverview combina a campanha com suas métricas recentes
type CampaignOverview struct {
	Campaign *domain.Campaign       `json:"campaign"`
	Metrics  domain.MetricsSnapshot `json:"metrics"`
}

// Reporter expõe as consultas da dashboard: campanhas, métricas, histórico de
// otimizações e alertas
type Reporter interface {
	ListCampaigns(userID int) ([]*domain.Campaign, error)
	GetCampaignOverview(userID int, campaignID string) (*CampaignOverview, error)
	ListOptimizations(userID int, campaignID string, limit int) ([]*domain.OptimizationRecord, error)
	ListCreatives(userID int, campaignID string) ([]*domain.AdCreative, error)
	ListAlerts(userID int, onlyUnread bool) ([]*domain.Alert, error)
	MarkAlertRead(userID int, alertID string) error
}

type Service struct {
	cfg              *config.Config
	campaignRepo     repository.CampaignRepository
	performanceRepo  repository.PerformanceRepository
	optimizationRepo repository.OptimizationRepository
	creativeRepo     repository.CreativeRepository
	alertRepo        repository.AlertRepository
}

func NewService(
	cfg *config.Config,
	campaignRepo repository.CampaignRepository,
	performanceRepo repository.PerformanceRepository,
	optimizationRepo repository.OptimizationRepository,
	creativeRepo repository.CreativeRepository,
	alertRepo repository.AlertRepository,
) Reporter {
	return &Service{
		cfg:              cfg,
		campaignRepo:     campaignRepo,
		performanceRepo:  performanceRepo,
		optimizationRepo: optimizationRepo,
		creativeRepo:     creativeRepo,
		alertRepo:        alertRepo,
	}
}

func (s *Service) ListCampaigns(userID int) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas do usuário %d: %w", userID, err)
	}

	return campaigns, nil
}

// GetCampaignOverview retorna a campanha com as métricas agregadas da janela
// recente de amostras
func (s *Service) GetCampaignOverview(userID int, campaignID string) (*CampaignOverview, error) {
	campaign, err := s.ownedCampaign(userID, campaignID)
	if err != nil {
		return nil, err
	}

	samples, err := s.performanceRepo.ListRecentByCampaign(campaign.ID, s.cfg.OptimizationCycle.RecentSampleDays)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar amostras da campanha %s: %w", campaignID, err)
	}

	return &CampaignOverview{
		Campaign: campaign,
		Metrics:  domain.AggregateSamples(samples),
	}, nil
}

func (s *Service) ListOptimizations(userID int, campaignID string, limit int) ([]*domain.OptimizationRecord, error) {
	if _, err := s.ownedCampaign(userID, campaignID); err != nil {
		return nil, err
	}

	records, err := s.optimizationRepo.ListByCampaign(campaignID, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar otimizações da campanha %s: %w", campaignID, err)
	}

	return records, nil
}

func (s *Service) ListCreatives(userID int, campaignID string) ([]*domain.AdCreative, error) {
	if _, err := s.ownedCampaign(userID, campaignID); err != nil {
		return nil, err
	}

	creatives, err := s.creativeRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar criativos da campanha %s: %w", campaignID, err)
	}

	return creatives, nil
}

func (s *Service) ListAlerts(userID int, onlyUnread bool) ([]*domain.Alert, error) {
	alerts, err := s.alertRepo.ListByUser(userID, onlyUnread)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar alertas do usuário %d: %w", userID, err)
	}

	return alerts, nil
}

func (s *Service) MarkAlertRead(userID int, alertID string) error {
	if err := s.alertRepo.MarkRead(alertID, userID); err != nil {
		logrus.WithFields(logrus.Fields{
			"alert_id": alertID,
			"user_id":  userID,
			"error":    err.Error(),
		}).Warn("Erro ao marcar alerta como lido")
		return err
	}

	return nil
}

// ownedCampaign busca a campanha validando que ela pertence ao usuário
func (s *Service) ownedCampaign(userID int, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha %s: %w", campaignID, err)
	}

	if campaign == nil || campaign.UserID != userID {
		return nil, ErrCampaignNotOwned
	}

	return campaign, nil
}
