package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Zero", input: 0, expected: 0},
		{name: "Arredonda para cima", input: 10.456, expected: 10.46},
		{name: "Arredonda para baixo", input: 10.454, expected: 10.45},
		{name: "Já com duas casas", input: 99.99, expected: 99.99},
		{name: "Valor negativo", input: -3.146, expected: -3.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, 12)
}
