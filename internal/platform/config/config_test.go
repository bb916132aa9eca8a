package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.AllowsAllOrigins())
	assert.True(t, cfg.OTLPInsecure)
	assert.Equal(t, "officeflow", cfg.JWTIssuer)
}

func TestLoadConfig_InvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
}

func TestAllowsAllOrigins(t *testing.T) {
	assert.True(t, (&Config{AllowedOrigins: []string{"*"}}).AllowsAllOrigins())
	assert.True(t, (&Config{}).AllowsAllOrigins())
}
