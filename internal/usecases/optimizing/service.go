package optimizing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adnova/ads-autopilot-api/infrastructure/repository"
	"github.com/adnova/ads-autopilot-api/internal/config"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// Service implementa o ciclo de otimização de campanhas
type Service struct {
	cfg              *config.Config
	rules            Rules
	campaignRepo     repository.CampaignRepository
	performanceRepo  repository.PerformanceRepository
	optimizationRepo repository.OptimizationRepository
	alertRepo        repository.AlertRepository
	creativeRepo     repository.CreativeRepository
	platform         AdsPlatform
	analyzer         PerformanceAnalyzer
	generator        CreativeGenerator
}

// NewService cria uma nova instância do serviço de otimização
func NewService(
	cfg *config.Config,
	campaignRepo repository.CampaignRepository,
	performanceRepo repository.PerformanceRepository,
	optimizationRepo repository.OptimizationRepository,
	alertRepo repository.AlertRepository,
	creativeRepo repository.CreativeRepository,
	platform AdsPlatform,
	analyzer PerformanceAnalyzer,
	generator CreativeGenerator,
) Optimizer {
	return &Service{
		cfg:              cfg,
		campaignRepo:     campaignRepo,
		performanceRepo:  performanceRepo,
		optimizationRepo: optimizationRepo,
		alertRepo:        alertRepo,
		creativeRepo:     creativeRepo,
		platform:         platform,
		analyzer:         analyzer,
		generator:        generator,
	}
}

// OptimizeAllCampaigns roda o ciclo para todas as campanhas ativas publicadas.
// A falha de uma campanha não interrompe as demais.
func (s *Service) OptimizeAllCampaigns(ctx context.Context) error {
	campaigns, err := s.campaignRepo.ListActiveWithExternalRef()
	if err != nil {
		return fmt.Errorf("erro ao listar campanhas ativas: %w", err)
	}

	logrus.WithField("campaigns", len(campaigns)).Info("Iniciando ciclo de otimização das campanhas")

	var failures int
	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := s.OptimizeCampaign(ctx, campaign.ID); err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Error("Erro na otimização da campanha")
		}
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": len(campaigns),
		"failures":  failures,
	}).Info("Ciclo de otimização das campanhas concluído")

	return nil
}

// OptimizeCampaign avalia as regras e aplica as otimizações de uma campanha.
// Campanhas sem amostras suficientes são ignoradas silenciosamente: dado
// insuficiente não é erro.
func (s *Service) OptimizeCampaign(ctx context.Context, campaignID string) ([]*domain.OptimizationRecord, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar campanha %s: %w", campaignID, err)
	}

	if campaign == nil {
		return nil, fmt.Errorf("campanha %s não encontrada", campaignID)
	}

	if campaign.Status != domain.CampaignStatusActive || !campaign.IsPublished() {
		logrus.WithField("campaign_id", campaignID).Debug("Campanha não elegível para otimização")
		return nil, nil
	}

	samples, err := s.performanceRepo.ListRecentByCampaign(campaign.ID, s.cfg.OptimizationCycle.RecentSampleDays)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar amostras da campanha %s: %w", campaignID, err)
	}

	if len(samples) < s.cfg.OptimizationCycle.MinSamples {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"samples":     len(samples),
		}).Debug("Amostras insuficientes para otimizar a campanha")
		return nil, nil
	}

	snapshot := domain.AggregateSamples(samples)

	// A análise da IA alimenta a confiança das propostas; a falha dela não
	// bloqueia o ciclo, as regras usam as confianças padrão
	var aiConfidence float64
	if analysis, err := s.analyzer.AnalyzeCampaignPerformance(ctx, campaign, &snapshot); err == nil && analysis != nil {
		aiConfidence = analysis.PerformanceScore
	}

	proposals := s.evaluate(campaign, snapshot, aiConfidence)

	var records []*domain.OptimizationRecord
	for _, proposal := range proposals {
		record, err := s.applyOptimization(ctx, campaign, proposal)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"type":        proposal.Type,
				"error":       err.Error(),
			}).Error("Erro ao aplicar otimização")
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// evaluate roda as quatro regras e devolve as propostas aplicáveis
func (s *Service) evaluate(campaign *domain.Campaign, snapshot domain.MetricsSnapshot, aiConfidence float64) []*domain.OptimizationProposal {
	var proposals []*domain.OptimizationProposal

	if p := s.rules.EvaluateBudget(campaign, snapshot, aiConfidence); p != nil {
		proposals = append(proposals, p)
	}

	if p := s.rules.EvaluateBidding(campaign, snapshot, aiConfidence); p != nil {
		proposals = append(proposals, p)
	}

	if p := s.rules.EvaluateTargeting(campaign, snapshot, aiConfidence); p != nil {
		proposals = append(proposals, p)
	}

	if p := s.evaluateCreatives(campaign); p != nil {
		proposals = append(proposals, p)
	}

	return proposals
}

// evaluateCreatives monta as métricas por criativo e roda a regra de criativos
func (s *Service) evaluateCreatives(campaign *domain.Campaign) *domain.OptimizationProposal {
	creatives, err := s.creativeRepo.ListActiveByCampaign(campaign.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("Erro ao listar criativos da campanha")
		return nil
	}

	performances := make([]CreativePerformance, 0, len(creatives))
	for _, creative := range creatives {
		samples, err := s.performanceRepo.ListRecentByCreative(creative.ID, s.cfg.OptimizationCycle.RecentSampleDays)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"creative_id": creative.ID,
				"error":       err.Error(),
			}).Error("Erro ao buscar amostras do criativo")
			return nil
		}

		performances = append(performances, CreativePerformance{
			Creative: creative,
			Snapshot: domain.AggregateSamples(samples),
		})
	}

	return s.rules.EvaluateCreatives(performances)
}

// applyOptimization persiste a proposta como pendente, dispara a mutação na
// plataforma e fecha o registro como aplicado ou falho. Em caso de falha a
// campanha armazenada permanece intocada.
func (s *Service) applyOptimization(ctx context.Context, campaign *domain.Campaign, proposal *domain.OptimizationProposal) (*domain.OptimizationRecord, error) {
	oldValue, err := proposal.OldValue()
	if err != nil {
		return nil, err
	}

	newValue, err := proposal.NewValue()
	if err != nil {
		return nil, err
	}

	record := &domain.OptimizationRecord{
		CampaignID: campaign.ID,
		Type:       proposal.Type,
		OldValue:   oldValue,
		NewValue:   newValue,
		Reason:     proposal.Reason,
		Confidence: proposal.Confidence,
		Status:     domain.OptimizationStatusPending,
	}

	if err := s.optimizationRepo.Save(record); err != nil {
		return nil, fmt.Errorf("erro ao salvar registro de otimização: %w", err)
	}

	if err := s.dispatch(ctx, campaign, proposal); err != nil {
		if updateErr := s.optimizationRepo.UpdateStatus(record.ID, domain.OptimizationStatusFailed, nil); updateErr != nil {
			logrus.WithFields(logrus.Fields{
				"record_id": record.ID,
				"error":     updateErr.Error(),
			}).Error("Erro ao marcar registro de otimização como falho")
		}
		record.Status = domain.OptimizationStatusFailed
		return nil, err
	}

	now := time.Now()
	if err := s.optimizationRepo.UpdateStatus(record.ID, domain.OptimizationStatusApplied, &now); err != nil {
		return nil, fmt.Errorf("erro ao marcar registro como aplicado: %w", err)
	}
	record.Status = domain.OptimizationStatusApplied
	record.AppliedAt = &now

	s.updateStoredCampaign(campaign, proposal, now)

	s.emitAppliedAlert(campaign, proposal)

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"type":        proposal.Type,
		"confidence":  proposal.Confidence,
	}).Info("Otimização aplicada na campanha")

	return record, nil
}

// dispatch executa exatamente uma mutação externa conforme o tipo da proposta
func (s *Service) dispatch(ctx context.Context, campaign *domain.Campaign, proposal *domain.OptimizationProposal) error {
	switch proposal.Type {
	case domain.OptimizationTypeBudget:
		return s.platform.UpdateBudget(*campaign.ExternalCampaignID, proposal.Budget.New)

	case domain.OptimizationTypeBidding:
		return s.platform.UpdateBidStrategy(*campaign.ExternalCampaignID, proposal.Bidding.New)

	case domain.OptimizationTypeTargeting:
		if campaign.ExternalAdSetID == nil || *campaign.ExternalAdSetID == "" {
			return fmt.Errorf("campanha %s não tem conjunto de anúncios publicado", campaign.ID)
		}
		return s.platform.UpdateTargeting(*campaign.ExternalAdSetID, proposal.Targeting.New)

	case domain.OptimizationTypeCreative:
		return s.applyCreativeChange(ctx, campaign, proposal.Creative)
	}

	return fmt.Errorf("tipo de otimização desconhecido: %s", proposal.Type)
}

// applyCreativeChange pausa os criativos sinalizados na plataforma e no banco
// e, se pedido, gera substitutos com a IA
func (s *Service) applyCreativeChange(ctx context.Context, campaign *domain.Campaign, change *domain.CreativeChange) error {
	creatives, err := s.creativeRepo.ListActiveByCampaign(campaign.ID)
	if err != nil {
		return fmt.Errorf("erro ao listar criativos da campanha: %w", err)
	}

	flagged := make(map[string]bool, len(change.PauseCreativeIDs))
	for _, id := range change.PauseCreativeIDs {
		flagged[id] = true
	}

	var externalIDs []string
	for _, creative := range creatives {
		if flagged[creative.ID] && creative.ExternalID != nil && *creative.ExternalID != "" {
			externalIDs = append(externalIDs, *creative.ExternalID)
		}
	}

	if len(externalIDs) > 0 {
		if err := s.platform.PauseCreatives(externalIDs); err != nil {
			return fmt.Errorf("erro ao pausar criativos na plataforma: %w", err)
		}
	}

	if err := s.creativeRepo.UpdateStatus(change.PauseCreativeIDs, domain.CreativeStatusPaused); err != nil {
		return fmt.Errorf("erro ao pausar criativos no banco: %w", err)
	}

	if change.GenerateNew {
		generated, err := s.generator.GenerateAdCreatives(ctx, campaign, len(change.PauseCreativeIDs))
		if err != nil {
			// Os criativos ruins já foram pausados; a geração pode ser refeita depois
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"error":       err.Error(),
			}).Warn("Erro ao gerar criativos de substituição")
			return nil
		}

		for _, creative := range generated {
			if err := s.creativeRepo.Save(creative); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"error":       err.Error(),
				}).Error("Erro ao salvar criativo gerado")
			}
		}
	}

	return nil
}

// updateStoredCampaign reflete a mudança aplicada nos campos da campanha
func (s *Service) updateStoredCampaign(campaign *domain.Campaign, proposal *domain.OptimizationProposal, appliedAt time.Time) {
	switch proposal.Type {
	case domain.OptimizationTypeBudget:
		campaign.Budget = proposal.Budget.New
	case domain.OptimizationTypeBidding:
		campaign.BidStrategy = proposal.Bidding.New
	case domain.OptimizationTypeTargeting:
		campaign.Targeting = proposal.Targeting.New
	}

	campaign.LastOptimizedAt = &appliedAt

	if err := s.campaignRepo.UpdateOptimizedFields(campaign); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("Erro ao gravar campos otimizados da campanha")
	}
}

// emitAppliedAlert notifica o usuário de uma otimização aplicada
func (s *Service) emitAppliedAlert(campaign *domain.Campaign, proposal *domain.OptimizationProposal) {
	alert := &domain.Alert{
		UserID:         campaign.UserID,
		CampaignID:     &campaign.ID,
		Type:           domain.AlertTypeOptimizationApplied,
		Title:          fmt.Sprintf("Otimização aplicada: %s", proposal.Type),
		Message:        proposal.Reason,
		Severity:       domain.AlertSeverityMedium,
		ActionRequired: false,
	}

	if err := s.alertRepo.Create(alert); err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"error":       err.Error(),
		}).Error("Erro ao criar alerta de otimização")
	}
}
