package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adnova/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

const (
	campaignsTable   = "campaigns c"
	campaignsColumns = "c.id, c.user_id, c.name, c.product_id, c.product_title, c.status, c.objective, c.budget, c.bid_strategy, c.targeting, c.external_campaign_id, c.external_adset_id, c.last_optimized_at, c.last_synced_at, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	GetByID(id string) (*domain.Campaign, error)
	ListByUser(userID int) ([]*domain.Campaign, error)
	ListActiveByUser(userID int) ([]*domain.Campaign, error)
	ListActiveWithExternalRef() ([]*domain.Campaign, error)
	UpdateOptimizedFields(campaign *domain.Campaign) error
	UpdateLastSyncedAt(id string, syncedAt time.Time) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := r.scanCampaign(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByUser(userID int) ([]*domain.Campaign, error) {
	return r.list(squirrel.Eq{"c.user_id": userID})
}

func (r *campaignRepository) ListActiveByUser(userID int) ([]*domain.Campaign, error) {
	return r.list(squirrel.Eq{"c.user_id": userID, "c.status": domain.CampaignStatusActive})
}

// ListActiveWithExternalRef retorna as campanhas elegíveis para otimização e
// sincronização: ativas e já publicadas na plataforma de anúncios
func (r *campaignRepository) ListActiveWithExternalRef() ([]*domain.Campaign, error) {
	return r.list(squirrel.And{
		squirrel.Eq{"c.status": domain.CampaignStatusActive},
		squirrel.NotEq{"c.external_campaign_id": nil},
	})
}

func (r *campaignRepository) list(pred interface{}) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(pred).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// UpdateOptimizedFields grava apenas os campos que o otimizador pode alterar.
// O status da campanha nunca é alterado por aqui.
func (r *campaignRepository) UpdateOptimizedFields(campaign *domain.Campaign) error {
	targetingJSON, err := json.Marshal(campaign.Targeting)
	if err != nil {
		return fmt.Errorf("erro ao serializar segmentação: %w", err)
	}

	query, args, err := squirrel.
		Update("campaigns").
		Set("budget", campaign.Budget).
		Set("bid_strategy", campaign.BidStrategy).
		Set("targeting", targetingJSON).
		Set("last_optimized_at", campaign.LastOptimizedAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) UpdateLastSyncedAt(id string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("last_synced_at", syncedAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar data de sincronização: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *campaignRepository) scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var campaign domain.Campaign
	var targetingJSON []byte

	err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		&campaign.ProductID,
		&campaign.ProductTitle,
		&campaign.Status,
		&campaign.Objective,
		&campaign.Budget,
		&campaign.BidStrategy,
		&targetingJSON,
		&campaign.ExternalCampaignID,
		&campaign.ExternalAdSetID,
		&campaign.LastOptimizedAt,
		&campaign.LastSyncedAt,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(targetingJSON) > 0 {
		if err := json.Unmarshal(targetingJSON, &campaign.Targeting); err != nil {
			return nil, fmt.Errorf("erro ao desserializar segmentação: %w", err)
		}
	}

	return &campaign, nil
}
