package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"

	"lavo-client/pkg/confkit"
	"lavo-client/pkg/lavo"
)

const sessionFileName = "session"

// Config is the root client configuration.
type Config struct {
	// Env indicates the running environment: test | dev | prod.
	Env string `json:",default=dev"`
	// DataPath holds client-local durable state (the session record).
	DataPath string `json:",default=data"`

	Lavo confkit.Section[lavo.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

// MustLoad loads configuration from path and panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the root config file, validates it and hydrates the client
// section.
func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Lavo.Hydrate(cfg.baseDir, lavo.LoadConfig); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises the environment and checks required fields.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "dev"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("config: dataPath is required")
	}
	return nil
}

// ClientConfig returns the hydrated client section, falling back to
// defaults when no section was configured.
func (c *Config) ClientConfig() *lavo.Config {
	if c.Lavo.Value != nil {
		return c.Lavo.Value
	}
	return lavo.DefaultConfig()
}

// SessionPath is the durable location of the bearer-token record.
func (c *Config) SessionPath() string {
	base := c.baseDir
	if base == "" {
		base = "."
	}
	return filepath.Join(confkit.ResolvePath(base, c.DataPath), sessionFileName)
}
