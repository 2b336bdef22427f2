package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("RATE_LIMIT_PER_SECOND", "")
	t.Setenv("ACCESS_TOKEN_EXPIRY_MINUTES", "")

	cfg := NewConfig()

	assert.Empty(t, cfg.GetKafkaBrokers())
	assert.Equal(t, []string{"*"}, cfg.GetCORSAllowOrigins())
	assert.Equal(t, float64(10), cfg.GetRateLimitPerSecond())
	assert.Equal(t, time.Hour, cfg.GetAccessTokenExpiry())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "Firebase")
	t.Setenv("LIKE_STORE", "POSTGRES")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, ,kafka-2:9092")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("ACCESS_TOKEN_EXPIRY_MINUTES", "15")

	cfg := NewConfig()

	assert.Equal(t, "firebase", cfg.GetAuthProvider())
	assert.Equal(t, "postgres", cfg.GetLikeStore())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.GetKafkaBrokers())
	assert.Equal(t, 2.5, cfg.GetRateLimitPerSecond())
	assert.Equal(t, 15*time.Minute, cfg.GetAccessTokenExpiry())
}
