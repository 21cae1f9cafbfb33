package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv_FileValues(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
env:
  serviceName: swipedeck
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 10s
secretKey:
  access: file-secret
auth:
  bcryptCost: 10
  protectSwipe: false
`)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "swipedeck", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "file-secret", cfg.SecretKey.Access)
	assert.Equal(t, 10, cfg.BcryptCost())
	assert.True(t, cfg.UploadProtected())
	assert.False(t, cfg.SwipeProtected())
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, `
secretKey:
  access: file-secret
`)

	t.Setenv("SECRETKEY_ACCESS", "env-secret")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
}

func TestFindConfigFile_AbsolutePathWins(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "env:\n  serviceName: elsewhere\n")

	// The package directory carries its own config.yaml; an explicit
	// absolute path must win over it.
	found, err := findConfigFile("config", []string{dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), found)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultBcryptCost, cfg.BcryptCost())
	assert.True(t, cfg.UploadProtected())
	assert.True(t, cfg.SwipeProtected())
}
