package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/usecases/optimizing"
)

// OptimizationCycleConfig representa a configuração do agendador do ciclo de otimização
type OptimizationCycleConfig struct {
	CronSchedule     string
	RecentSampleDays int
	MinSamples       int
	CycleEnabled     bool
}

// OptimizationCycleService gerencia o agendamento e execução do ciclo de
// otimização de campanhas
type OptimizationCycleService struct {
	scheduler            *gocron.Scheduler
	config               OptimizationCycleConfig
	appConfig            *config.Config
	optimizer            optimizing.Optimizer
	cycleRunning         bool
	cycleMutex           sync.Mutex
	lastCycleStartedAt   time.Time
	lastCycleCompletedAt time.Time
}

// NewOptimizationCycleService cria uma nova instância do serviço do ciclo de otimização
func NewOptimizationCycleService(
	optimizer optimizing.Optimizer,
	appConfig *config.Config,
) *OptimizationCycleService {
	cycleConfig := OptimizationCycleConfig{
		CronSchedule:     appConfig.OptimizationCycle.CronSchedule,
		RecentSampleDays: appConfig.OptimizationCycle.RecentSampleDays,
		MinSamples:       appConfig.OptimizationCycle.MinSamples,
		CycleEnabled:     appConfig.OptimizationCycle.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":      cycleConfig.CronSchedule,
		"recent_sample_days": cycleConfig.RecentSampleDays,
		"min_samples":        cycleConfig.MinSamples,
		"cycle_enabled":      cycleConfig.CycleEnabled,
	}).Info("Configuração do agendador do ciclo de otimização carregada")

	return &OptimizationCycleService{
		scheduler:    scheduler,
		config:       cycleConfig,
		appConfig:    appConfig,
		optimizer:    optimizer,
		cycleRunning: false,
	}
}

// Start inicia o agendador
func (s *OptimizationCycleService) Start(ctx context.Context) error {
	if !s.config.CycleEnabled {
		logrus.Info("Ciclo de otimização desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do ciclo de otimização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runOptimizationCycle()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ciclo de otimização: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do ciclo de otimização")
		s.scheduler.Stop()
	}()

	return nil
}

// runOptimizationCycle roda o ciclo para todas as campanhas elegíveis. Se um
// ciclo ainda está em andamento, o disparo é ignorado, não enfileirado.
func (s *OptimizationCycleService) runOptimizationCycle() {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Ciclo de otimização já em andamento, ignorando")
		return
	}
	s.cycleRunning = true
	startTime := time.Now()
	s.lastCycleStartedAt = startTime
	s.cycleMutex.Unlock()

	defer func() {
		s.cycleMutex.Lock()
		s.cycleRunning = false
		s.cycleMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo de otimização para todas as campanhas ativas")

	if err := s.optimizer.OptimizeAllCampaigns(context.Background()); err != nil {
		logrus.WithError(err).Error("Erro ao rodar o ciclo de otimização")
		return
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Ciclo de otimização concluído")

	s.cycleMutex.Lock()
	s.lastCycleCompletedAt = time.Now()
	s.cycleMutex.Unlock()
}

// TriggerManualSync inicia manualmente um ciclo de otimização
func (s *OptimizationCycleService) TriggerManualSync() {
	s.cycleMutex.Lock()
	if s.cycleRunning {
		s.cycleMutex.Unlock()
		logrus.Info("Ciclo de otimização já em andamento, ignorando solicitação manual")
		return
	}
	s.cycleMutex.Unlock()

	logrus.Info("Iniciando ciclo de otimização manual")
	go s.runOptimizationCycle()
}

// GetStatus retorna o status atual do agendador
func (s *OptimizationCycleService) GetStatus() map[string]any {
	s.cycleMutex.Lock()
	defer s.cycleMutex.Unlock()

	return map[string]any{
		"cycle_enabled":           s.config.CycleEnabled,
		"cycle_cron":              s.config.CronSchedule,
		"cycle_sample_days":       s.config.RecentSampleDays,
		"cycle_min_samples":       s.config.MinSamples,
		"last_cycle_started_at":   s.lastCycleStartedAt,
		"last_cycle_completed_at": s.lastCycleCompletedAt,
	}
}
