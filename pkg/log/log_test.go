package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestGetCorrelationID_SemIDNoContexto(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext(t *testing.T) {
	testCases := []struct {
		name  string
		ctx   func() (context.Context, string)
		hasID bool
	}{
		{
			name: "contexto com ID de correlação carrega o campo no logger",
			ctx: func() (context.Context, string) {
				return WithCorrelationID(context.Background())
			},
			hasID: true,
		},
		{
			name: "contexto sem ID de correlação não carrega o campo",
			ctx: func() (context.Context, string) {
				return context.Background(), ""
			},
			hasID: false,
		},
		{
			name: "contexto nulo não causa panic",
			ctx: func() (context.Context, string) {
				return nil, ""
			},
			hasID: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, correlationID := tc.ctx()

			entry := ForContext(ctx)
			assert.NotNil(t, entry)

			if tc.hasID {
				assert.Equal(t, correlationID, entry.Data[correlationIDField])
			} else {
				assert.NotContains(t, entry.Data, correlationIDField)
			}
		})
	}
}
