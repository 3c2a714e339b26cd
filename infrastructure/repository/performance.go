package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adnova/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/adnova/ads-autopilot-api/internal/domain"
)

const (
	performancesTable   = "performances p"
	performancesColumns = "p.id, p.campaign_id, p.creative_id, p.date, p.impressions, p.clicks, p.conversions, p.spend, p.revenue, p.reach, p.frequency, p.created_at"
)

type PerformanceRepository interface {
	Append(sample *domain.PerformanceSample) error
	ListRecentByCampaign(campaignID string, limit int) ([]*domain.PerformanceSample, error)
	ListRecentByCreative(creativeID string, limit int) ([]*domain.PerformanceSample, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// Append grava uma nova amostra de performance. Amostras nunca são alteradas
// depois de gravadas.
func (r *performanceRepository) Append(sample *domain.PerformanceSample) error {
	query, args, err := squirrel.
		Insert("performances").
		Columns("campaign_id", "creative_id", "date", "impressions", "clicks", "conversions", "spend", "revenue", "reach", "frequency").
		Values(
			sample.CampaignID,
			sample.CreativeID,
			sample.Date.Format("2006-01-02"),
			sample.Impressions,
			sample.Clicks,
			sample.Conversions,
			sample.Spend,
			sample.Revenue,
			sample.Reach,
			sample.Frequency,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar amostra de performance: %w", err)
	}

	return nil
}

func (r *performanceRepository) ListRecentByCampaign(campaignID string, limit int) ([]*domain.PerformanceSample, error) {
	return r.list(squirrel.And{
		squirrel.Eq{"p.campaign_id": campaignID},
		squirrel.Eq{"p.creative_id": nil},
	}, limit)
}

func (r *performanceRepository) ListRecentByCreative(creativeID string, limit int) ([]*domain.PerformanceSample, error) {
	return r.list(squirrel.Eq{"p.creative_id": creativeID}, limit)
}

func (r *performanceRepository) list(pred interface{}, limit int) ([]*domain.PerformanceSample, error) {
	query, args, err := squirrel.
		Select(performancesColumns).
		From(performancesTable).
		Where(pred).
		OrderBy("p.date DESC").
		Limit(uint64(limit)).
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

	samples := make([]*domain.PerformanceSample, 0)
	for rows.Next() {
		var sample domain.PerformanceSample

		err := rows.Scan(
			&sample.ID,
			&sample.CampaignID,
			&sample.CreativeID,
			&sample.Date,
			&sample.Impressions,
			&sample.Clicks,
			&sample.Conversions,
			&sample.Spend,
			&sample.Revenue,
			&sample.Reach,
			&sample.Frequency,
			&sample.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear amostra de performance: %w", err)
		}

		samples = append(samples, &sample)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return samples, nil
}
