package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/viant/afs"
	"github.com/viant/drupal-mcp/drupal"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by FromEnv.
const (
	EnvBaseURL     = "DRUPAL_BASE_URL"
	EnvUsername    = "DRUPAL_USERNAME"
	EnvPassword    = "DRUPAL_PASSWORD"
	EnvAccessToken = "DRUPAL_ACCESS_TOKEN"
	EnvLogLevel    = "DRUPAL_MCP_LOG_LEVEL"
)

type Config struct {
	Drupal   *drupal.Config     `yaml:"drupal,omitempty" json:"drupal,omitempty"`
	Server   *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Builtins []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	LogLevel string             `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
}

// Load reads the configuration from URL (local path, file://, mem://, …).
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return cfg, nil
}

// ApplyEnv overlays non-empty environment variables and fills defaults.
func (c *Config) ApplyEnv(lookup func(string) string) {
	if lookup == nil {
		lookup = os.Getenv
	}
	if c.Drupal == nil {
		c.Drupal = &drupal.Config{}
	}
	overlay := func(dest *string, key string) {
		if value := lookup(key); value != "" {
			*dest = value
		}
	}
	overlay(&c.Drupal.BaseURL, EnvBaseURL)
	overlay(&c.Drupal.Username, EnvUsername)
	overlay(&c.Drupal.Password, EnvPassword)
	overlay(&c.Drupal.AccessToken, EnvAccessToken)
	overlay(&c.LogLevel, EnvLogLevel)
	if c.Drupal.BaseURL == "" {
		c.Drupal.BaseURL = drupal.DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = hclog.Info.String()
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Drupal, validation.Required),
		validation.Field(&c.LogLevel, validation.By(logLevel)),
	)
}

// Level returns the configured hclog level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

func logLevel(value interface{}) error {
	level, _ := value.(string)
	if level == "" {
		return nil
	}
	if hclog.LevelFromString(level) == hclog.NoLevel {
		return fmt.Errorf("unsupported log level %q", strings.ToLower(level))
	}
	return nil
}
