package domain

import (
	"time"
)

// CampaignStatus representa o ciclo de vida de uma campanha
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
)

// BidStrategy representa a estratégia de lance usada no Meta
type BidStrategy string

const (
	BidStrategyLowestCost        BidStrategy = "LOWEST_COST_WITHOUT_CAP"
	BidStrategyLowestCostWithCap BidStrategy = "LOWEST_COST_WITH_BID_CAP"
	BidStrategyTargetCost        BidStrategy = "TARGET_COST"
)

// Targeting representa a segmentação de público de uma campanha
type Targeting struct {
	AgeMin    int      `json:"age_min"`
	AgeMax    int      `json:"age_max"`
	Genders   []string `json:"genders,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// Valores padrão aplicados quando a campanha foi criada sem faixa etária
const (
	DefaultAgeMin = 25
	DefaultAgeMax = 55

	MinAgeMin = 18
	MinAgeMax = 25
	MaxAgeMax = 65
)

// WithDefaults retorna a segmentação com a faixa etária padrão preenchida
func (t Targeting) WithDefaults() Targeting {
	if t.AgeMin == 0 {
		t.AgeMin = DefaultAgeMin
	}
	if t.AgeMax == 0 {
		t.AgeMax = DefaultAgeMax
	}
	return t
}

// Campaign representa uma campanha de anúncios gerenciada pela plataforma
type Campaign struct {
	ID                 string         `json:"id"`
	UserID             int            `json:"user_id"`
	Name               string         `json:"name"`
	ProductID          string         `json:"product_id"`
	ProductTitle       string         `json:"product_title"`
	Status             CampaignStatus `json:"status"`
	Objective          string         `json:"objective"`
	Budget             float64        `json:"budget"`
	BidStrategy        BidStrategy    `json:"bid_strategy"`
	Targeting          Targeting      `json:"targeting"`
	ExternalCampaignID *string        `json:"external_campaign_id"`
	ExternalAdSetID    *string        `json:"external_adset_id"`
	LastOptimizedAt    *time.Time     `json:"last_optimized_at"`
	LastSyncedAt       *time.Time     `json:"last_synced_at"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// IsPublished indica se a campanha já existe na plataforma de anúncios
func (c *Campaign) IsPublished() bool {
	return c.ExternalCampaignID != nil && *c.ExternalCampaignID != ""
}

// ExternalCampaignState representa o estado atual da campanha na plataforma
// de anúncios, usado na reconciliação de otimizações pendentes
type ExternalCampaignState struct {
	ExternalID  string
	Status      string
	Budget      float64
	BidStrategy BidStrategy
}
