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
	alertsTable   = "alerts a"
	alertsColumns = "a.id, a.user_id, a.campaign_id, a.type, a.title, a.message, a.severity, a.is_read, a.action_required, a.created_at"
)

type AlertRepository interface {
	Create(alert *domain.Alert) error
	ListByUser(userID int, onlyUnread bool) ([]*domain.Alert, error)
	MarkRead(id string, userID int) error
}

type alertRepository struct {
	conn *postgres.Connection
}

func NewAlertRepository(conn *postgres.Connection) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

func (r *alertRepository) Create(alert *domain.Alert) error {
	if alert.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar ID do alerta: %w", err)
		}
		alert.ID = id
	}

	query, args, err := squirrel.
		Insert("alerts").
		Columns("id", "user_id", "campaign_id", "type", "title", "message", "severity", "is_read", "action_required").
		Values(
			alert.ID,
			alert.UserID,
			alert.CampaignID,
			alert.Type,
			alert.Title,
			alert.Message,
			alert.Severity,
			alert.IsRead,
			alert.ActionRequired,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao criar alerta: %w", err)
	}

	return nil
}

func (r *alertRepository) ListByUser(userID int, onlyUnread bool) ([]*domain.Alert, error) {
	builder := squirrel.
		Select(alertsColumns).
		From(alertsTable).
		Where(squirrel.Eq{"a.user_id": userID}).
		OrderBy("a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyUnread {
		builder = builder.Where(squirrel.Eq{"a.is_read": false})
	}

	query, args, err := builder.ToSql()
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

	alerts := make([]*domain.Alert, 0)
	for rows.Next() {
		var alert domain.Alert

		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.CampaignID,
			&alert.Type,
			&alert.Title,
			&alert.Message,
			&alert.Severity,
			&alert.IsRead,
			&alert.ActionRequired,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
		}

		alerts = append(alerts, &alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return alerts, nil
}

// MarkRead marca o alerta como lido. O userID evita que um usuário marque
// alertas de outro.
func (r *alertRepository) MarkRead(id string, userID int) error {
	query, args, err := squirrel.
		Update("alerts").
		Set("is_read", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar alerta como lido: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
