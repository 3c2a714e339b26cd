package domain

import (
	"time"
)

// PerformanceSample representa as métricas agregadas de um dia de veiculação,
// coletadas pela sincronização de performance. Imutável depois de gravada.
type PerformanceSample struct {
	ID          int64     `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	CreativeID  *string   `json:"creative_id"`
	Date        time.Time `json:"date"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	Reach       int       `json:"reach"`
	Frequency   float64   `json:"frequency"`
	CreatedAt   time.Time `json:"created_at"`
}

// InsightFilters delimita o intervalo de datas de uma consulta de métricas
type InsightFilters struct {
	StartDate time.Time
	EndDate   time.Time
}
