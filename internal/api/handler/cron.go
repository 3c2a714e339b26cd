package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adnova/ads-autopilot-api/internal/domain"
	"github.com/adnova/ads-autopilot-api/internal/scheduler"
	"github.com/adnova/ads-autopilot-api/pkg/apiErrors"
	"github.com/adnova/ads-autopilot-api/pkg/log"
	"github.com/adnova/ads-autopilot-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeOptimization    = "optimization"
	CronJobTypePerformanceSync = "performance-sync"
	CronJobTypeDailyAnalysis   = "daily-analysis"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	OptimizationCycleService *scheduler.OptimizationCycleService
	PerformanceSyncService   *scheduler.PerformanceSyncService
	DailyAnalysisService     *scheduler.DailyAnalysisService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeOptimization:
			// Executar o ciclo de otimização
			if services.OptimizationCycleService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ciclo de otimização não disponível", nil)
				return
			}
			services.OptimizationCycleService.TriggerManualSync()

		case CronJobTypePerformanceSync:
			// Executar a sincronização de métricas de performance
			if services.PerformanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de performance não disponível", nil)
				return
			}
			services.PerformanceSyncService.TriggerManualSync()

		case CronJobTypeDailyAnalysis:
			// Executar a análise diária de alertas
			if services.DailyAnalysisService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de análise diária não disponível", nil)
				return
			}
			services.DailyAnalysisService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar todas as sincronizações
			if services.PerformanceSyncService != nil {
				services.PerformanceSyncService.TriggerManualSync()
			}
			if services.OptimizationCycleService != nil {
				services.OptimizationCycleService.TriggerManualSync()
			}
			if services.DailyAnalysisService != nil {
				services.DailyAnalysisService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: optimization, performance-sync, daily-analysis, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"optimization":     services.OptimizationCycleService.GetStatus(),
			"performance-sync": services.PerformanceSyncService.GetStatus(),
			"daily-analysis":   services.DailyAnalysisService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
