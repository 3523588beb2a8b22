package lavo

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"lavo-client/pkg/confkit"
)

// Config describes how to reach the Lavo Exchange service.
type Config struct {
	BaseURL string `yaml:"base_url"`

	TimeoutRaw string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"`
}

// DefaultConfig returns a configuration pointing at a local service.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultHTTPTimeout,
	}
}

// LoadConfig reads client configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lavo config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode lavo config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises raw fields and applies defaults.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(os.ExpandEnv(c.BaseURL)), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if raw := strings.TrimSpace(c.TimeoutRaw); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("lavo config: parse timeout %q: %w", raw, err)
		}
		if d <= 0 {
			return fmt.Errorf("lavo config: timeout must be positive")
		}
		c.Timeout = d
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultHTTPTimeout
	}
	return nil
}

// NewClient builds a Client from this configuration.
func (c *Config) NewClient(opts ...Option) *Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	base := []Option{
		WithBaseURL(c.BaseURL),
		WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	return NewClient(append(base, opts...)...)
}
