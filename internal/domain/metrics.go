package domain

// MetricsSnapshot resume um conjunto de amostras de performance em um único
// retrato de métricas derivadas. Produzido por AggregateSamples.
type MetricsSnapshot struct {
	Spend          float64 `json:"spend"`
	Revenue        float64 `json:"revenue"`
	ROAS           float64 `json:"roas"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	ConversionRate float64 `json:"conversion_rate"`
	Conversions    int     `json:"conversions"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Frequency      float64 `json:"frequency"`
	DaysRunning    int     `json:"days_running"`
}

// AggregateSamples reduz as amostras em um MetricsSnapshot. A ordem das
// amostras é irrelevante. Divisões com denominador zero resultam em zero:
// uma campanha sem dados ainda não tem métrica, não é um erro.
//
// A frequência é a média aritmética das frequências por amostra, porque
// frequência já é uma média (impressões por pessoa alcançada) e somá-la
// entre amostras não tem significado.
func AggregateSamples(samples []*PerformanceSample) MetricsSnapshot {
	if len(samples) == 0 {
		return MetricsSnapshot{}
	}

	var snapshot MetricsSnapshot
	var frequencySum float64

	for _, sample := range samples {
		snapshot.Spend += sample.Spend
		snapshot.Revenue += sample.Revenue
		snapshot.Clicks += sample.Clicks
		snapshot.Impressions += sample.Impressions
		snapshot.Conversions += sample.Conversions
		frequencySum += sample.Frequency
	}

	if snapshot.Spend > 0 {
		snapshot.ROAS = snapshot.Revenue / snapshot.Spend
	}

	if snapshot.Impressions > 0 {
		snapshot.CTR = (float64(snapshot.Clicks) / float64(snapshot.Impressions)) * 100
	}

	if snapshot.Clicks > 0 {
		snapshot.CPC = snapshot.Spend / float64(snapshot.Clicks)
		snapshot.ConversionRate = (float64(snapshot.Conversions) / float64(snapshot.Clicks)) * 100
	}

	snapshot.Frequency = frequencySum / float64(len(samples))
	snapshot.DaysRunning = len(samples)

	return snapshot
}
