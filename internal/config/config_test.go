package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "shopdash", cfg.Database.Name)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Webhook.Secret)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoad_WebhookSecretFromEnv(t *testing.T) {
	t.Setenv("SHOPIFY_WEBHOOK_SECRET", "shpss_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shpss_test", cfg.Webhook.Secret)
}

func TestSplitBrokers(t *testing.T) {
	assert.Nil(t, splitBrokers(""))
	assert.Equal(t, []string{"k1:9092"}, splitBrokers("k1:9092"))
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, splitBrokers("k1:9092, k2:9092"))
}

func TestKafkaConfig_Enabled(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "order-events", cfg.Kafka.Topic)
}
