package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/drupal-mcp/drupal"
)

func TestLoad(t *testing.T) {
	location := filepath.Join(t.TempDir(), "drupal-mcp.yaml")
	require.NoError(t, os.WriteFile(location, []byte(`
drupal:
  baseUrl: https://cms.example.com
  username: editor
  password: secret
builtins:
  - printer
logLevel: debug
`), 0o644))

	cfg, err := Load(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, &drupal.Config{BaseURL: "https://cms.example.com", Username: "editor", Password: "secret"}, cfg.Drupal)
	assert.Equal(t, []string{"printer"}, cfg.Builtins)
	assert.Equal(t, hclog.Debug, cfg.Level())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(location, []byte("drupal: [unterminated"), 0o644))
	_, err = Load(context.Background(), location)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "failed to parse")
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		env         map[string]string
		expect      *drupal.Config
		expectLevel string
	}{
		{
			description: "defaults",
			config:      &Config{},
			expect:      &drupal.Config{BaseURL: drupal.DefaultBaseURL},
			expectLevel: "info",
		},
		{
			description: "env overrides file",
			config:      &Config{Drupal: &drupal.Config{BaseURL: "https://file.example.com", Username: "file"}, LogLevel: "warn"},
			env: map[string]string{
				EnvBaseURL:     "https://env.example.com",
				EnvPassword:    "pw",
				EnvAccessToken: "token",
				EnvLogLevel:    "trace",
			},
			expect:      &drupal.Config{BaseURL: "https://env.example.com", Username: "file", Password: "pw", AccessToken: "token"},
			expectLevel: "trace",
		},
	}
	for _, testCase := range testCases {
		testCase.config.ApplyEnv(func(key string) string { return testCase.env[key] })
		assert.Equal(t, testCase.expect, testCase.config.Drupal, testCase.description)
		assert.Equal(t, testCase.expectLevel, testCase.config.LogLevel, testCase.description)
		assert.NoError(t, testCase.config.Validate(), testCase.description)
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Drupal: &drupal.Config{BaseURL: "ftp://x"}}).Validate())
	assert.Error(t, (&Config{Drupal: &drupal.Config{BaseURL: "https://x"}, LogLevel: "loud"}).Validate())
	assert.NoError(t, (&Config{Drupal: &drupal.Config{BaseURL: "https://x"}}).Validate())
}
