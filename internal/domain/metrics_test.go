package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateSamples(t *testing.T) {
	tests := []struct {
		name     string
		samples  []*PerformanceSample
		expected MetricsSnapshot
	}{
		{
			name:     "Sem amostras - deve retornar retrato zerado",
			samples:  nil,
			expected: MetricsSnapshot{},
		},
		{
			name: "Uma amostra - as métricas derivadas refletem a própria amostra",
			samples: []*PerformanceSample{
				{Spend: 100, Revenue: 300, Clicks: 200, Impressions: 10000, Conversions: 10, Frequency: 1.5},
			},
			expected: MetricsSnapshot{
				Spend:          100,
				Revenue:        300,
				ROAS:           3.0,
				CTR:            2.0,
				CPC:            0.5,
				ConversionRate: 5.0,
				Conversions:    10,
				Impressions:    10000,
				Clicks:         200,
				Frequency:      1.5,
				DaysRunning:    1,
			},
		},
		{
			name: "Várias amostras - soma os totais e deriva sobre o agregado",
			samples: []*PerformanceSample{
				{Spend: 50, Revenue: 100, Clicks: 100, Impressions: 4000, Conversions: 2, Frequency: 1.0},
				{Spend: 150, Revenue: 500, Clicks: 300, Impressions: 6000, Conversions: 10, Frequency: 2.0},
			},
			expected: MetricsSnapshot{
				Spend:          200,
				Revenue:        600,
				ROAS:           3.0,
				CTR:            4.0,
				CPC:            0.5,
				ConversionRate: 3.0,
				Conversions:    12,
				Impressions:    10000,
				Clicks:         400,
				Frequency:      1.5,
				DaysRunning:    2,
			},
		},
		{
			name: "Amostras sem gasto nem cliques - divisões por zero resultam em zero",
			samples: []*PerformanceSample{
				{Impressions: 500, Frequency: 1.0},
				{Impressions: 500, Frequency: 3.0},
			},
			expected: MetricsSnapshot{
				Impressions: 1000,
				Frequency:   2.0,
				DaysRunning: 2,
			},
		},
		{
			name: "Gasto sem retorno - ROAS zero com CPC calculado",
			samples: []*PerformanceSample{
				{Spend: 40, Clicks: 80, Impressions: 2000, Frequency: 1.2},
			},
			expected: MetricsSnapshot{
				Spend:       40,
				CTR:         4.0,
				CPC:         0.5,
				Clicks:      80,
				Impressions: 2000,
				Frequency:   1.2,
				DaysRunning: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := AggregateSamples(tt.samples)
			assert.Equal(t, tt.expected, snapshot)
		})
	}
}
