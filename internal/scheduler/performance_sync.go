package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	shopifydomain "github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/domain"
	"github.com/adnova/ads-autopilot-api/infrastructure/repository"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// MetricsFetcher busca métricas de um dia de veiculação na plataforma de anúncios
type MetricsFetcher interface {
	GetCampaignPerformance(externalCampaignID string, date time.Time) (*domain.PerformanceSample, error)
}

// RevenueAttributor calcula a receita da loja atribuída a uma campanha
type RevenueAttributor interface {
	GetAttributedRevenue(params shopifydomain.GetOrdersParams, campaignID string, filters *domain.InsightFilters) (float64, error)
}

// PerformanceSyncConfig representa a configuração do agendador de coleta de métricas
type PerformanceSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// PerformanceSyncService gerencia o agendamento e execução da coleta periódica
// de métricas das campanhas publicadas
type PerformanceSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceSyncConfig
	appConfig           *config.Config
	campaignRepo        repository.CampaignRepository
	performanceRepo     repository.PerformanceRepository
	userRepo            repository.UserRepository
	metricsFetcher      MetricsFetcher
	revenueAttributor   RevenueAttributor
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPerformanceSyncService cria uma nova instância do serviço de coleta de métricas
func NewPerformanceSyncService(
	campaignRepo repository.CampaignRepository,
	performanceRepo repository.PerformanceRepository,
	userRepo repository.UserRepository,
	metricsFetcher MetricsFetcher,
	revenueAttributor RevenueAttributor,
	appConfig *config.Config,
) *PerformanceSyncService {
	syncConfig := PerformanceSyncConfig{
		CronSchedule:        appConfig.PerformanceSync.CronSchedule,
		RequestDelaySeconds: appConfig.PerformanceSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.PerformanceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de coleta de métricas carregada")

	return &PerformanceSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		appConfig:         appConfig,
		campaignRepo:      campaignRepo,
		performanceRepo:   performanceRepo,
		userRepo:          userRepo,
		metricsFetcher:    metricsFetcher,
		revenueAttributor: revenueAttributor,
		syncRunning:       false,
	}
}

// Start inicia o agendador
func (s *PerformanceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de métricas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns coleta as métricas do último dia de todas as campanhas
// ativas publicadas. A falha de uma campanha não interrompe as demais.
func (s *PerformanceSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando coleta de métricas para todas as campanhas publicadas")

	campaigns, err := s.campaignRepo.ListActiveWithExternalRef()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para coleta de métricas")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha publicada encontrada para coleta de métricas")
		return
	}

	var failures int
	for _, campaign := range campaigns {
		if err := s.syncCampaign(campaign); err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro ao coletar métricas da campanha")
		}

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(campaigns),
		"failures":  failures,
	}).Info("Coleta de métricas concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// syncCampaign coleta as métricas de ontem da campanha na plataforma, soma a
// receita atribuída da loja e grava tudo como uma amostra de performance
func (s *PerformanceSyncService) syncCampaign(campaign *domain.Campaign) error {
	date := time.Now().AddDate(0, 0, -1)

	sample, err := s.metricsFetcher.GetCampaignPerformance(*campaign.ExternalCampaignID, date)
	if err != nil {
		return fmt.Errorf("erro ao buscar métricas na plataforma: %w", err)
	}

	if sample == nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"date":        date.Format(time.DateOnly),
		}).Debug("Campanha sem veiculação na data, nada a gravar")
		return nil
	}

	sample.CampaignID = campaign.ID

	// A receita vem da loja do usuário; os insights do Meta não a conhecem
	sample.Revenue = s.attributedRevenue(campaign, date)

	if err := s.performanceRepo.Append(sample); err != nil {
		return fmt.Errorf("erro ao gravar amostra de performance: %w", err)
	}

	if err := s.campaignRepo.UpdateLastSyncedAt(campaign.ID, time.Now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Warn("Erro ao atualizar data de sincronização da campanha")
	}

	return nil
}

// attributedRevenue busca a receita atribuída à campanha na loja do usuário.
// Usuário sem loja conectada resulta em receita zero, não em erro.
func (s *PerformanceSyncService) attributedRevenue(campaign *domain.Campaign, date time.Time) float64 {
	user, err := s.userRepo.GetUserByID(campaign.UserID)
	if err != nil || user == nil {
		logrus.WithField("campaign_id", campaign.ID).Warn("Usuário da campanha não encontrado para atribuição de receita")
		return 0
	}

	if user.ShopDomain == "" || user.ShopifyToken == "" {
		return 0
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	filters := &domain.InsightFilters{
		StartDate: dayStart,
		EndDate:   dayStart.AddDate(0, 0, 1),
	}

	revenue, err := s.revenueAttributor.GetAttributedRevenue(shopifydomain.GetOrdersParams{
		ShopDomain:  user.ShopDomain,
		AccessToken: user.ShopifyToken,
	}, campaign.ID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Warn("Erro ao buscar receita atribuída na loja")
		return 0
	}

	return revenue
}

// TriggerManualSync inicia manualmente uma coleta de métricas
func (s *PerformanceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual de métricas")
	go s.syncAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
