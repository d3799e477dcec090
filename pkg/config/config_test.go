package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("fraud-detection")
	require.NoError(t, err)

	assert.Equal(t, "fraud-detection", cfg.Server.ServiceName)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Engine.FraudThreshold)
	assert.Equal(t, 30, cfg.Engine.LowReputation)
	assert.Equal(t, 0.5, cfg.Engine.ReceiptConfidenceMin)
	assert.False(t, cfg.Events.Enabled)
	assert.False(t, cfg.Sentry.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("FRAUD_THRESHOLD", "75")
	t.Setenv("RECEIPT_CONFIDENCE_MIN", "0.65")
	t.Setenv("NATS_ENABLED", "true")

	cfg, err := Load("fraud-detection")
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, 75, cfg.Engine.FraudThreshold)
	assert.Equal(t, 0.65, cfg.Engine.ReceiptConfidenceMin)
	assert.True(t, cfg.Events.Enabled)
}
