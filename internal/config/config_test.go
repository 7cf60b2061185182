package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generator.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "JWT_EXPIRY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "GENERATOR_CONFIG"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, crypto.DefaultOptions(), cfg.Generator.Options())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "staging")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("GENERATOR_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst, "invalid value falls back")
}

func TestLoadRejectsDevSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrDevSecretInProduction)
}

func TestLoadGeneratorConfig(t *testing.T) {
	path := writeFile(t, "generator:\n  length: 16\n  symbols: false\n")
	t.Setenv("ENV", "development")
	t.Setenv("GENERATOR_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	want := crypto.Options{Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: false}
	assert.Equal(t, want, cfg.Generator.Options())
}

func TestLoadGeneratorDefaultsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "generator: [1, 2"},
		{name: "length out of range", content: "generator:\n  length: 120\n"},
		{name: "no character types", content: "generator:\n  uppercase: false\n  lowercase: false\n  numbers: false\n  symbols: false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGeneratorDefaults(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadGeneratorDefaultsMissingFile(t *testing.T) {
	_, err := LoadGeneratorDefaults(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
