package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/resumes",
		"log_format": "pretty",
		"default_education_level": "Bachelor's",
		"concurrency": 8,
		"rate_limit": {"enabled": true, "requests_per_minute": 30, "burst": 5}
	}`

	cfg, err := LoadConfig(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "Bachelor's", cfg.DefaultEducationLevel)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, RateLimitConfig{Enabled: true, RequestsPerMinute: 30, Burst: 5}, cfg.RateLimit)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Defaults()},
		{name: "bad port", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "negative upload", cfg: Config{MaxUploadBytes: -1}, wantErr: "max_upload_bytes"},
		{name: "negative experience", cfg: Config{DefaultMinExperience: -2}, wantErr: "default_min_experience"},
		{name: "negative concurrency", cfg: Config{Concurrency: -1}, wantErr: "concurrency"},
		{name: "bad education", cfg: Config{DefaultEducationLevel: "Kindergarten"}, wantErr: "default_education_level"},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: "log_format"},
		{name: "bad rate limit", cfg: Config{RateLimit: RateLimitConfig{Burst: -1}}, wantErr: "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Port:        9000,
		DatabaseURL: "postgres://custom",
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "postgres://custom", merged.DatabaseURL)

	// Default values should fill in empty fields
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, int64(10<<20), merged.MaxUploadBytes)
	assert.Equal(t, 4, merged.Concurrency)
	assert.Equal(t, Defaults().RateLimit, merged.RateLimit)
}

func TestMergeWithDefaults_PartialRateLimit(t *testing.T) {
	partial := Config{RateLimit: RateLimitConfig{Enabled: true, Burst: 2}}

	merged := partial.MergeWithDefaults(Defaults())

	assert.True(t, merged.RateLimit.Enabled)
	assert.Equal(t, 2, merged.RateLimit.Burst)
	assert.Equal(t, 60, merged.RateLimit.RequestsPerMinute)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 1234}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 1234, merged.Port)
	assert.Empty(t, merged.LogLevel)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := Defaults()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestApplyEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	cfg := Defaults()
	err := cfg.ApplyEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PORT", "LOG_LEVEL", "LOG_FORMAT", "MAX_UPLOAD_BYTES", "RATE_LIMIT_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(writeConfig(t, `{"port": 8181, "log_level": "warn"}`))
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)

	_, err = Load(writeConfig(t, `{"log_format": "xml"}`))
	assert.Error(t, err)
}
