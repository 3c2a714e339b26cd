package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// DailyAnalysisConfig representa a configuração do agendador de análise diária
type DailyAnalysisConfig struct {
	CronSchedule          string
	DefaultSpendThreshold float64
	MinSpendForRoasAlert  float64
	RoasAlertThreshold    float64
	AnalysisEnabled       bool
}

// DailyAnalysisService gerencia a análise diária das contas: soma os gastos e
// o retorno recente de cada usuário e emite os alertas de orçamento e de
// performance baixa
type DailyAnalysisService struct {
	scheduler               *gocron.Scheduler
	config                  DailyAnalysisConfig
	appConfig               *config.Config
	userRepo                repository.UserRepository
	campaignRepo            repository.CampaignRepository
	performanceRepo         repository.PerformanceRepository
	alertRepo               repository.AlertRepository
	analysisRunning         bool
	analysisMutex           sync.Mutex
	lastAnalysisStartedAt   time.Time
	lastAnalysisCompletedAt time.Time
}

// NewDailyAnalysisService cria uma nova instância do serviço de análise diária
func NewDailyAnalysisService(
	userRepo repository.UserRepository,
	campaignRepo repository.CampaignRepository,
	performanceRepo repository.PerformanceRepository,
	alertRepo repository.AlertRepository,
	appConfig *config.Config,
) *DailyAnalysisService {
	analysisConfig := DailyAnalysisConfig{
		CronSchedule:          appConfig.DailyAnalysis.CronSchedule,
		DefaultSpendThreshold: appConfig.DailyAnalysis.DefaultSpendThreshold,
		MinSpendForRoasAlert:  appConfig.DailyAnalysis.MinSpendForRoasAlert,
		RoasAlertThreshold:    appConfig.DailyAnalysis.RoasAlertThreshold,
		AnalysisEnabled:       appConfig.DailyAnalysis.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":           analysisConfig.CronSchedule,
		"default_spend_threshold": analysisConfig.DefaultSpendThreshold,
		"roas_alert_threshold":    analysisConfig.RoasAlertThreshold,
		"analysis_enabled":        analysisConfig.AnalysisEnabled,
	}).Info("Configuração do agendador de análise diária carregada")

	return &DailyAnalysisService{
		scheduler:       scheduler,
		config:          analysisConfig,
		appConfig:       appConfig,
		userRepo:        userRepo,
		campaignRepo:    campaignRepo,
		performanceRepo: performanceRepo,
		alertRepo:       alertRepo,
		analysisRunning: false,
	}
}

// Start inicia o agendador
func (s *DailyAnalysisService) Start(ctx context.Context) error {
	if !s.config.AnalysisEnabled {
		logrus.Info("Análise diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análise diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.analyzeAllUsers()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise diária: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de análise diária")
		s.scheduler.Stop()
	}()

	return nil
}

// analyzeAllUsers roda a análise para todos os usuários ativos
func (s *DailyAnalysisService) analyzeAllUsers() {
	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		logrus.Info("Análise diária já em andamento, ignorando")
		return
	}
	s.analysisRunning = true
	startTime := time.Now()
	s.lastAnalysisStartedAt = startTime
	s.analysisMutex.Unlock()

	defer func() {
		s.analysisMutex.Lock()
		s.analysisRunning = false
		s.analysisMutex.Unlock()
	}()

	logrus.Info("Iniciando análise diária para todos os usuários ativos")

	users, err := s.userRepo.ListActiveUsers()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar usuários para análise diária")
		return
	}

	for _, user := range users {
		if err := s.analyzeUser(user); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Erro na análise diária do usuário")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"users":    len(users),
	}).Info("Análise diária concluída")

	s.analysisMutex.Lock()
	s.lastAnalysisCompletedAt = time.Now()
	s.analysisMutex.Unlock()
}

// analyzeUser agrega as amostras recentes das campanhas ativas do usuário e
// emite os alertas de gasto e de retorno
func (s *DailyAnalysisService) analyzeUser(user *domain.User) error {
	campaigns, err := s.campaignRepo.ListActiveByUser(user.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar campanhas do usuário: %w", err)
	}

	if len(campaigns) == 0 {
		return nil
	}

	var samples []*domain.PerformanceSample
	for _, campaign := range campaigns {
		campaignSamples, err := s.performanceRepo.ListRecentByCampaign(campaign.ID, s.appConfig.OptimizationCycle.RecentSampleDays)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Warn("Erro ao buscar amostras da campanha na análise diária")
			continue
		}
		samples = append(samples, campaignSamples...)
	}

	if len(samples) == 0 {
		return nil
	}

	snapshot := domain.AggregateSamples(samples)

	threshold := user.Settings.BudgetAlertThreshold
	if threshold <= 0 {
		threshold = s.config.DefaultSpendThreshold
	}

	if snapshot.Spend > threshold {
		s.emitAlert(user, &domain.Alert{
			UserID:         user.ID,
			Type:           domain.AlertTypeBudgetExceeded,
			Title:          "Gasto acima do limite configurado",
			Message:        fmt.Sprintf("Suas campanhas gastaram %.2f nos últimos %d dias, acima do limite de %.2f", snapshot.Spend, snapshot.DaysRunning, threshold),
			Severity:       domain.AlertSeverityHigh,
			ActionRequired: true,
		})
	}

	if snapshot.ROAS < s.config.RoasAlertThreshold && snapshot.Spend > s.config.MinSpendForRoasAlert {
		s.emitAlert(user, &domain.Alert{
			UserID:         user.ID,
			Type:           domain.AlertTypeLowPerformance,
			Title:          "Retorno abaixo do esperado",
			Message:        fmt.Sprintf("O ROAS das suas campanhas está em %.2f com gasto de %.2f no período", snapshot.ROAS, snapshot.Spend),
			Severity:       domain.AlertSeverityMedium,
			ActionRequired: true,
		})
	}

	return nil
}

func (s *DailyAnalysisService) emitAlert(user *domain.User, alert *domain.Alert) {
	if err := s.alertRepo.Create(alert); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"type":    alert.Type,
			"error":   err.Error(),
		}).Error("Erro ao criar alerta da análise diária")
		return
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"type":     alert.Type,
		"severity": alert.Severity,
	}).Info("Alerta da análise diária criado")
}

// TriggerManualSync inicia manualmente uma análise diária
func (s *DailyAnalysisService) TriggerManualSync() {
	s.analysisMutex.Lock()
	if s.analysisRunning {
		s.analysisMutex.Unlock()
		logrus.Info("Análise diária já em andamento, ignorando solicitação manual")
		return
	}
	s.analysisMutex.Unlock()

	logrus.Info("Iniciando análise diária manual")
	go s.analyzeAllUsers()
}

// GetStatus retorna o status atual do agendador
func (s *DailyAnalysisService) GetStatus() map[string]any {
	s.analysisMutex.Lock()
	defer s.analysisMutex.Unlock()

	return map[string]any{
		"analysis_enabled":            s.config.AnalysisEnabled,
		"analysis_cron":               s.config.CronSchedule,
		"default_spend_threshold":     s.config.DefaultSpendThreshold,
		"roas_alert_threshold":        s.config.RoasAlertThreshold,
		"last_analysis_started_at":    s.lastAnalysisStartedAt,
		"last_analysis_completed_at":  s.lastAnalysisCompletedAt,
	}
}
