package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// OptimizationType identifica qual aspecto da campanha a otimização altera
type OptimizationType string

const (
	OptimizationTypeBudget    OptimizationType = "budget"
	OptimizationTypeBidding   OptimizationType = "bidding"
	OptimizationTypeCreative  OptimizationType = "creative"
	OptimizationTypeTargeting OptimizationType = "targeting"
	OptimizationTypeSchedule  OptimizationType = "schedule"
)

// OptimizationStatus representa o ciclo de vida de um registro de otimização.
// Um registro nasce pending e transita para exatamente um estado terminal
// (applied ou failed); reverted é uma transição manual posterior.
type OptimizationStatus string

const (
	OptimizationStatusPending  OptimizationStatus = "pending"
	OptimizationStatusApplied  OptimizationStatus = "applied"
	OptimizationStatusReverted OptimizationStatus = "reverted"
	OptimizationStatusFailed   OptimizationStatus = "failed"
)

// BudgetChange representa a alteração de orçamento diário proposta
type BudgetChange struct {
	Old float64 `json:"old_budget"`
	New float64 `json:"new_budget"`
}

// BiddingChange representa a troca de estratégia de lance proposta
type BiddingChange struct {
	Old BidStrategy `json:"old_bid_strategy"`
	New BidStrategy `json:"new_bid_strategy"`
}

// TargetingChange representa o ajuste de segmentação proposto
type TargetingChange struct {
	Old Targeting `json:"old_targeting"`
	New Targeting `json:"new_targeting"`
}

// CreativeChange representa a pausa de criativos de baixa performance e o
// pedido de geração de substitutos
type CreativeChange struct {
	ActiveCreatives  int      `json:"active_creatives"`
	PauseCreativeIDs []string `json:"pause_creative_ids"`
	GenerateNew      bool     `json:"generate_new"`
}

// OptimizationProposal é a saída das regras de otimização. Exatamente um dos
// ponteiros de mudança é não-nulo, conforme o Type.
type OptimizationProposal struct {
	Type       OptimizationType
	Budget     *BudgetChange
	Bidding    *BiddingChange
	Targeting  *TargetingChange
	Creative   *CreativeChange
	Reason     string
	Confidence float64
}

// OldValue serializa o estado anterior da mudança para persistência
func (p *OptimizationProposal) OldValue() (json.RawMessage, error) {
	switch p.Type {
	case OptimizationTypeBudget:
		return json.Marshal(map[string]float64{"budget": p.Budget.Old})
	case OptimizationTypeBidding:
		return json.Marshal(map[string]BidStrategy{"bid_strategy": p.Bidding.Old})
	case OptimizationTypeTargeting:
		return json.Marshal(map[string]Targeting{"targeting": p.Targeting.Old})
	case OptimizationTypeCreative:
		return json.Marshal(map[string]int{"active_creatives": p.Creative.ActiveCreatives})
	}
	return nil, fmt.Errorf("tipo de otimização desconhecido: %s", p.Type)
}

// NewValue serializa o estado proposto da mudança para persistência
func (p *OptimizationProposal) NewValue() (json.RawMessage, error) {
	switch p.Type {
	case OptimizationTypeBudget:
		return json.Marshal(map[string]float64{"budget": p.Budget.New})
	case OptimizationTypeBidding:
		return json.Marshal(map[string]BidStrategy{"bid_strategy": p.Bidding.New})
	case OptimizationTypeTargeting:
		return json.Marshal(map[string]Targeting{"targeting": p.Targeting.New})
	case OptimizationTypeCreative:
		return json.Marshal(map[string]any{
			"pause_creative_ids": p.Creative.PauseCreativeIDs,
			"generate_new":       p.Creative.GenerateNew,
		})
	}
	return nil, fmt.Errorf("tipo de otimização desconhecido: %s", p.Type)
}

// OptimizationRecord é o histórico append-only de otimizações por campanha
type OptimizationRecord struct {
	ID         string             `json:"id"`
	CampaignID string             `json:"campaign_id"`
	Type       OptimizationType   `json:"type"`
	OldValue   json.RawMessage    `json:"old_value"`
	NewValue   json.RawMessage    `json:"new_value"`
	Reason     string             `json:"reason"`
	Confidence float64            `json:"confidence"`
	Status     OptimizationStatus `json:"status"`
	AppliedAt  *time.Time         `json:"applied_at"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
