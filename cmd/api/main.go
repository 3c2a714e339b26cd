package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adnova/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/gemini"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify"
	"github.com/adnova/ads-autopilot-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/adnova/ads-autopilot-api/infrastructure/repository"
	"github.com/adnova/ads-autopilot-api/internal/api"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/scheduler"
	"github.com/adnova/ads-autopilot-api/internal/usecases/authenticating"
	"github.com/adnova/ads-autopilot-api/internal/usecases/campaigning"
	"github.com/adnova/ads-autopilot-api/internal/usecases/optimizing"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)
	optimizationRepo := repository.NewOptimizationRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	tokenManager.InitToken()
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	geminiClient := geminiclient.NewClient(cfg)
	geminiIntegrator := gemini.New(cfg, geminiClient)

	authenticator := authenticating.NewService(userRepo, shopifyIntegrator, cfg)

	optimizer := optimizing.NewService(
		cfg,
		campaignRepo,
		performanceRepo,
		optimizationRepo,
		alertRepo,
		creativeRepo,
		metaIntegrator,
		geminiIntegrator,
		geminiIntegrator,
	)

	// Reconciliar otimizações pendentes deixadas por uma queda anterior
	// antes de aceitar novos ciclos
	if err := optimizer.ReconcilePending(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao reconciliar otimizações pendentes")
	}

	reporter := campaigning.NewService(
		cfg,
		campaignRepo,
		performanceRepo,
		optimizationRepo,
		creativeRepo,
		alertRepo,
	)

	// Inicializa os agendadores de sincronização separados
	performanceSyncService := scheduler.NewPerformanceSyncService(
		campaignRepo,
		performanceRepo,
		userRepo,
		metaIntegrator,    // Implementa MetricsFetcher
		shopifyIntegrator, // Implementa RevenueAttributor
		cfg,
	)

	optimizationCycleService := scheduler.NewOptimizationCycleService(
		optimizer,
		cfg,
	)

	dailyAnalysisService := scheduler.NewDailyAnalysisService(
		userRepo,
		campaignRepo,
		performanceRepo,
		alertRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := performanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta de métricas")
	} else {
		logrus.Info("Agendador de coleta de métricas iniciado com sucesso")
	}

	if err := optimizationCycleService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ciclo de otimização")
	} else {
		logrus.Info("Agendador do ciclo de otimização iniciado com sucesso")
	}

	if err := dailyAnalysisService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise diária")
	} else {
		logrus.Info("Agendador de análise diária iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reporter,
		authenticator,
		optimizationCycleService,
		performanceSyncService,
		dailyAnalysisService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
