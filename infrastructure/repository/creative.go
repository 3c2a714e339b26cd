package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/adnova/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/adnova/ads-autopilot-api/internal/domain"
	"github.com/adnova/ads-autopilot-api/pkg/utils"
)

const (
	creativesTable   = "ad_creatives ac"
	creativesColumns = "ac.id, ac.campaign_id, ac.external_id, ac.headline, ac.primary_text, ac.description, ac.cta, ac.angle, ac.status, ac.created_at, ac.updated_at"
)

type CreativeRepository interface {
	Save(creative *domain.AdCreative) error
	ListByCampaign(campaignID string) ([]*domain.AdCreative, error)
	ListActiveByCampaign(campaignID string) ([]*domain.AdCreative, error)
	UpdateStatus(ids []string, status string) error
}

type creativeRepository struct {
	conn *postgres.Connection
}

func NewCreativeRepository(conn *postgres.Connection) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

func (r *creativeRepository) Save(creative *domain.AdCreative) error {
	if creative.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do criativo: %w", err)
		}
		creative.ID = id
	}

	query, args, err := squirrel.
		Insert("ad_creatives").
		Columns("id", "campaign_id", "external_id", "headline", "primary_text", "description", "cta", "angle", "status").
		Values(
			creative.ID,
			creative.CampaignID,
			creative.ExternalID,
			creative.Headline,
			creative.PrimaryText,
			creative.Description,
			creative.CTA,
			creative.Angle,
			creative.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar criativo: %w", err)
	}

	return nil
}

func (r *creativeRepository) ListByCampaign(campaignID string) ([]*domain.AdCreative, error) {
	return r.list(squirrel.Eq{"ac.campaign_id": campaignID})
}

func (r *creativeRepository) ListActiveByCampaign(campaignID string) ([]*domain.AdCreative, error) {
	return r.list(squirrel.Eq{"ac.campaign_id": campaignID, "ac.status": domain.CreativeStatusActive})
}

func (r *creativeRepository) list(pred interface{}) ([]*domain.AdCreative, error) {
	query, args, err := squirrel.
		Select(creativesColumns).
		From(creativesTable).
		Where(pred).
		OrderBy("ac.created_at ASC").
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

	creatives := make([]*domain.AdCreative, 0)
	for rows.Next() {
		var creative domain.AdCreative

		err := rows.Scan(
			&creative.ID,
			&creative.CampaignID,
			&creative.ExternalID,
			&creative.Headline,
			&creative.PrimaryText,
			&creative.Description,
			&creative.CTA,
			&creative.Angle,
			&creative.Status,
			&creative.CreatedAt,
			&creative.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear criativo: %w", err)
		}

		creatives = append(creatives, &creative)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creatives, nil
}

func (r *creativeRepository) UpdateStatus(ids []string, status string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Update("ad_creatives").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status dos criativos: %w", err)
	}

	return nil
}
