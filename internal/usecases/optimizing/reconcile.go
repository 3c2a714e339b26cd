package optimizing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adnova/ads-autopilot-api/internal/domain"
)

// ReconcilePending resolve registros de otimização deixados como pending por
// uma queda do processo entre gravar o registro e confirmar a mutação externa.
// Orçamento e lance são verificáveis contra o estado atual da plataforma: se o
// estado já reflete o valor proposto, o registro é fechado como aplicado e a
// campanha armazenada é atualizada; caso contrário o registro falha. Mudanças
// de segmentação e criativos não têm verificação barata e falham direto, o que
// permite às regras propor de novo no próximo ciclo.
func (s *Service) ReconcilePending(ctx context.Context) error {
	pending, err := s.optimizationRepo.ListPending()
	if err != nil {
		return fmt.Errorf("erro ao listar otimizações pendentes: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	logrus.WithField("records", len(pending)).Info("Reconciliando registros de otimização pendentes")

	for _, record := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := s.reconcileRecord(record); err != nil {
			logrus.WithFields(logrus.Fields{
				"record_id":   record.ID,
				"campaign_id": record.CampaignID,
				"error":       err.Error(),
			}).Error("Erro ao reconciliar registro pendente")
		}
	}

	return nil
}

func (s *Service) reconcileRecord(record *domain.OptimizationRecord) error {
	campaign, err := s.campaignRepo.GetByID(record.CampaignID)
	if err != nil || campaign == nil || !campaign.IsPublished() {
		return s.closeRecord(record, domain.OptimizationStatusFailed, nil)
	}

	switch record.Type {
	case domain.OptimizationTypeBudget:
		return s.reconcileBudget(record, campaign)
	case domain.OptimizationTypeBidding:
		return s.reconcileBidding(record, campaign)
	default:
		// Segmentação e criativos não são verificáveis contra a plataforma
		return s.closeRecord(record, domain.OptimizationStatusFailed, nil)
	}
}

func (s *Service) reconcileBudget(record *domain.OptimizationRecord, campaign *domain.Campaign) error {
	var newValue struct {
		Budget float64 `json:"budget"`
	}
	if err := json.Unmarshal(record.NewValue, &newValue); err != nil {
		return s.closeRecord(record, domain.OptimizationStatusFailed, nil)
	}

	state, err := s.platform.GetCampaign(*campaign.ExternalCampaignID)
	if err != nil {
		return fmt.Errorf("erro ao consultar estado da campanha na plataforma: %w", err)
	}

	if state.Budget != newValue.Budget {
		return s.closeRecord(record, domain.OptimizationStatusFailed, nil)
	}

	// A mutação chegou na plataforma antes da queda: completa a aplicação
	now := time.Now()
	campaign.Budget = newValue.Budget
	campaign.LastOptimizedAt = &now
	if err := s.campaignRepo.UpdateOptimizedFields(campaign); err != nil {
		return fmt.Errorf("erro ao atualizar campanha reconciliada: %w", err)
	}

	return s.closeRecord(record, domain.OptimizationStatusApplied, &now)
}

func (s *Service) reconcileBidding(record *domain.OptimizationRecord, campaign *domain.Campaign) error {
	var newValue struct {
		BidStrategy domain.BidStrategy `json:"bid_strategy"`
	}
	if err := json.Unmarshal(record.NewValue, &newValue); err != nil {
		return s.closeRecord(record, domain.OptimizationStatusFailed, nil)
	}

	state, err := s.platform.GetCampaign(*campaign.ExternalCampaignID)
	if err != nil {
		return fmt.Errorf("erro ao consultar estado da campanha na plataforma: %w", err)
	}

	if state.BidStrategy != newValue.BidStrategy {
		return s.closeRecord(record, domain.OptimizationStatusFailed, nil)
	}

	now := time.Now()
	campaign.BidStrategy = newValue.BidStrategy
	campaign.LastOptimizedAt = &now
	if err := s.campaignRepo.UpdateOptimizedFields(campaign); err != nil {
		return fmt.Errorf("erro ao atualizar campanha reconciliada: %w", err)
	}

	return s.closeRecord(record, domain.OptimizationStatusApplied, &now)
}

func (s *Service) closeRecord(record *domain.OptimizationRecord, status domain.OptimizationStatus, appliedAt *time.Time) error {
	if err := s.optimizationRepo.UpdateStatus(record.ID, status, appliedAt); err != nil {
		return fmt.Errorf("erro ao fechar registro pendente: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"record_id":   record.ID,
		"campaign_id": record.CampaignID,
		"type":        record.Type,
		"status":      status,
	}).Info("Registro pendente reconciliado")

	return nil
}
