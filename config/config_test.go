package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Production'da SESSION_SECRET yoksa process hiç başlamamalı.
func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "prod-secret-value")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("prod-secret-value"), cfg.Session.Secret)
	assert.True(t, cfg.IsProduction())
}

// Development'ta secret yoksa deterministik fallback devreye girmeli.
func TestLoad_DevelopmentFallbackSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DATABASE_PATH", "./data/test.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Session.Secret)
	assert.False(t, cfg.IsProduction())
}

// Aynı konfigürasyon her seferinde aynı secret'ı türetmeli —
// restart'lar arası açık oturumlar geçerli kalır.
func TestResolveSessionSecret_Deterministic(t *testing.T) {
	s1, err := resolveSessionSecret(ModeDevelopment, "", "./data/app.db")
	require.NoError(t, err)
	s2, err := resolveSessionSecret(ModeDevelopment, "", "./data/app.db")
	require.NoError(t, err)

	assert.Equal(t, s1, s2)

	// Farklı db path → farklı secret
	s3, err := resolveSessionSecret(ModeDevelopment, "", "./data/other.db")
	require.NoError(t, err)
	assert.NotEqual(t, s1, s3)
}

// Explicit secret OLDUĞU GİBİ kullanılmalı — hash'lenmez, türetilmez.
func TestResolveSessionSecret_ExplicitVerbatim(t *testing.T) {
	secret, err := resolveSessionSecret(ModeProduction, "my-explicit-secret", "./data/app.db")
	require.NoError(t, err)
	assert.Equal(t, []byte("my-explicit-secret"), secret)
}

// Türetim girdisi de yoksa fatal konfigürasyon hatası.
func TestResolveSessionSecret_NoDerivationInput(t *testing.T) {
	_, err := resolveSessionSecret(ModeDevelopment, "", "")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"development", "production", "test"} {
		mode, err := parseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, DeploymentMode(valid), mode)
	}

	// Kısaltma kabul edilmez — "prod" yazıp yanlışlıkla dev modda koşulmasın
	for _, invalid := range []string{"prod", "dev", "staging", ""} {
		_, err := parseMode(invalid)
		assert.Error(t, err, "mode %q", invalid)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 604800, cfg.Session.MaxAgeSec) // 7 gün
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
}
