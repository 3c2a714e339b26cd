package domain

import (
	"time"
)

// AlertSeverity indica a urgência de um alerta para o usuário
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Tipos de alerta emitidos pelo otimizador e pela análise diária
const (
	AlertTypeOptimizationApplied = "optimization_applied"
	AlertTypeBudgetExceeded      = "budget_exceeded"
	AlertTypeLowPerformance      = "low_performance"
)

// Alert representa uma notificação criada para o usuário. A criação acontece
// aqui; leitura e descarte pertencem à superfície HTTP.
type Alert struct {
	ID             string        `json:"id"`
	UserID         int           `json:"user_id"`
	CampaignID     *string       `json:"campaign_id"`
	Type           string        `json:"type"`
	Title          string        `json:"title"`
	Message        string        `json:"message"`
	Severity       AlertSeverity `json:"severity"`
	IsRead         bool          `json:"is_read"`
	ActionRequired bool          `json:"action_required"`
	CreatedAt      time.Time     `json:"created_at"`
}
