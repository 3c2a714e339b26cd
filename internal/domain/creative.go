package domain

import (
	"time"
)

// Status possíveis de um criativo
const (
	CreativeStatusActive = "active"
	CreativeStatusPaused = "paused"
)

// AdCreative representa uma variação de criativo vinculada a uma campanha.
// Criativos gerados pela IA nascem active e podem ser pausados pelo otimizador.
type AdCreative struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	ExternalID  *string   `json:"external_id"`
	Headline    string    `json:"headline"`
	PrimaryText string    `json:"primary_text"`
	Description string    `json:"description"`
	CTA         string    `json:"cta"`
	Angle       string    `json:"angle"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PerformanceAnalysis é o resultado da análise de performance feita pela IA.
// Apenas o PerformanceScore alimenta a confiança das otimizações; o restante
// é exibido ao usuário.
type PerformanceAnalysis struct {
	OverallHealth    string   `json:"overall_health"`
	PerformanceScore float64  `json:"performance_score"`
	KeyInsights      []string `json:"key_insights"`
	Recommendations  []string `json:"recommendations"`
}
