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
	optimizationsTable   = "optimizations o"
	optimizationsColumns = "o.id, o.campaign_id, o.type, o.old_value, o.new_value, o.reason, o.confidence, o.status, o.applied_at, o.created_at, o.updated_at"
)

type OptimizationRepository interface {
	Save(record *domain.OptimizationRecord) error
	UpdateStatus(id string, status domain.OptimizationStatus, appliedAt *time.Time) error
	ListByCampaign(campaignID string, limit int) ([]*domain.OptimizationRecord, error)
	ListPending() ([]*domain.OptimizationRecord, error)
}

type optimizationRepository struct {
	conn *postgres.Connection
}

func NewOptimizationRepository(conn *postgres.Connection) OptimizationRepository {
	return &optimizationRepository{
		conn: conn,
	}
}

// Save grava um novo registro de otimização. O ID é gerado aqui e devolvido
// no próprio record.
func (r *optimizationRepository) Save(record *domain.OptimizationRecord) error {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do registro: %w", err)
		}
		record.ID = id
	}

	query, args, err := squirrel.
		Insert("optimizations").
		Columns("id", "campaign_id", "type", "old_value", "new_value", "reason", "confidence", "status").
		Values(
			record.ID,
			record.CampaignID,
			record.Type,
			[]byte(record.OldValue),
			[]byte(record.NewValue),
			record.Reason,
			record.Confidence,
			record.Status,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar registro de otimização: %w", err)
	}

	return nil
}

// UpdateStatus move o registro para um estado terminal. AppliedAt só é
// preenchido quando a otimização foi de fato aplicada.
func (r *optimizationRepository) UpdateStatus(id string, status domain.OptimizationStatus, appliedAt *time.Time) error {
	query, args, err := squirrel.
		Update("optimizations").
		Set("status", status).
		Set("applied_at", appliedAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status do registro: %w", err)
	}

	return nil
}

func (r *optimizationRepository) ListByCampaign(campaignID string, limit int) ([]*domain.OptimizationRecord, error) {
	builder := squirrel.
		Select(optimizationsColumns).
		From(optimizationsTable).
		Where(squirrel.Eq{"o.campaign_id": campaignID}).
		OrderBy("o.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(query, args)
}

// ListPending retorna registros que nunca chegaram a um estado terminal,
// usados na reconciliação de inicialização
func (r *optimizationRepository) ListPending() ([]*domain.OptimizationRecord, error) {
	query, args, err := squirrel.
		Select(optimizationsColumns).
		From(optimizationsTable).
		Where(squirrel.Eq{"o.status": domain.OptimizationStatusPending}).
		OrderBy("o.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(query, args)
}

func (r *optimizationRepository) query(query string, args []interface{}) ([]*domain.OptimizationRecord, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.OptimizationRecord, 0)
	for rows.Next() {
		var record domain.OptimizationRecord
		var oldValue, newValue []byte

		err := rows.Scan(
			&record.ID,
			&record.CampaignID,
			&record.Type,
			&oldValue,
			&newValue,
			&record.Reason,
			&record.Confidence,
			&record.Status,
			&record.AppliedAt,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de otimização: %w", err)
		}

		record.OldValue = oldValue
		record.NewValue = newValue
		records = append(records, &record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
