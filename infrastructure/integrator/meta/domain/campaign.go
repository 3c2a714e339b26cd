package metadomain

// Campaign representa uma campanha retornada pela API do Meta
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status,omitempty"`
	DailyBudget     string `json:"daily_budget,omitempty"`
	BidStrategy     string `json:"bid_strategy,omitempty"`
}

// AdSet representa um conjunto de anúncios retornado pela API do Meta
type AdSet struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	BidStrategy string     `json:"bid_strategy,omitempty"`
	Targeting   *Targeting `json:"targeting,omitempty"`
}

// Targeting representa a segmentação de um conjunto de anúncios no Meta
type Targeting struct {
	AgeMin       int            `json:"age_min,omitempty"`
	AgeMax       int            `json:"age_max,omitempty"`
	Genders      []int          `json:"genders,omitempty"`
	GeoLocations *GeoLocations  `json:"geo_locations,omitempty"`
	Interests    []TargetDetail `json:"interests,omitempty"`
}

// GeoLocations representa as localizações da segmentação
type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
}

// TargetDetail representa um interesse da segmentação
type TargetDetail struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// UpdateResponse representa a resposta de uma atualização na API do Meta
type UpdateResponse struct {
	Success bool `json:"success"`
}
