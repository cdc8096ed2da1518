package shared

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, 32)

	// Original context is untouched.
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceIDUniqueness(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		require.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "trace IDs must be unique")
		seen[id] = true
	}
}

func TestFallbackTraceIDIsValidHex(t *testing.T) {
	id := generateFallbackTraceID()
	assert.Len(t, id, 32)
	_, err := hex.DecodeString(id)
	assert.NoError(t, err)
}
