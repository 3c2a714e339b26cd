package metadomain

// InsightResult representa o resultado de insights da API do Meta
type InsightResult struct {
	Data   []Insight `json:"data"`
	Paging *Paging   `json:"paging,omitempty"`
}

// Insight representa uma linha de insights de uma campanha
type Insight struct {
	CampaignID  string        `json:"campaign_id,omitempty"`
	AdID        string        `json:"ad_id,omitempty"`
	Impressions string        `json:"impressions,omitempty"`
	Clicks      string        `json:"clicks,omitempty"`
	Spend       string        `json:"spend,omitempty"`
	Reach       string        `json:"reach,omitempty"`
	Frequency   string        `json:"frequency,omitempty"`
	Actions     []ActionValue `json:"actions,omitempty"`
	DateStart   string        `json:"date_start,omitempty"`
	DateStop    string        `json:"date_stop,omitempty"`
}

// ActionValue representa uma ação (conversão, compra) nos insights
type ActionValue struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Paging representa a paginação das respostas da API do Meta
type Paging struct {
	Cursors *Cursors `json:"cursors,omitempty"`
	Next    string   `json:"next,omitempty"`
}

// Cursors contém os cursores de paginação
type Cursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}
