package sportysky

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the client settings.
type Config struct {
	APIURL  string      `yaml:"api_url"`
	Token   string      `yaml:"token"` //nolint:gosec // usually "${SPORTYSKY_TOKEN}", expanded at load time
	Format  string      `yaml:"format"`
	Models  []string    `yaml:"models"`
	Timeout string      `yaml:"timeout"` // Duration string, e.g. "10s".
	Debug   bool        `yaml:"debug"`
	Cache   CacheConfig `yaml:"cache"`
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in string values are
// expanded after parsing, so the token can live in the environment or a .env
// file and its value is never read as YAML.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("sportysky: load config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("sportysky: parse config: %w", err)
	}
	cfg.expandEnv()

	return cfg, nil
}

func (c *Config) expandEnv() {
	c.APIURL = os.ExpandEnv(c.APIURL)
	c.Token = os.ExpandEnv(c.Token)
	c.Format = os.ExpandEnv(c.Format)
	c.Timeout = os.ExpandEnv(c.Timeout)
	c.Cache.Dir = os.ExpandEnv(c.Cache.Dir)
	for i, m := range c.Models {
		c.Models[i] = os.ExpandEnv(m)
	}
}

// LoadDotEnv loads environment variables from path. Missing files are ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Validate checks the fields that can be checked without the environment.
// The API URL may still come from EnvAPIURL, so it is not required here.
func (c Config) Validate() error {
	if c.Token == "" {
		return &ConfigError{Field: "token", Err: ErrMissingToken}
	}
	if _, err := c.timeout(); err != nil {
		return &ConfigError{Field: "timeout", Err: fmt.Errorf("%w: %v", ErrInvalidConfig, err)}
	}
	for i, m := range c.Models {
		if m == "" {
			return &ConfigError{Field: "models", Err: fmt.Errorf("%w: model %d is empty", ErrInvalidConfig, i)}
		}
	}
	return nil
}

func (c Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout cannot be negative")
	}
	return d, nil
}

// Options converts c to client options.
func (c Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d, _ := c.timeout()

	opts := []Option{
		WithFormat(c.Format),
		WithModels(c.Models...),
		WithCache(c.Cache),
	}
	if c.Debug {
		opts = append(opts, WithDebug(true))
	}
	if d > 0 {
		opts = append(opts, WithTimeout(d))
	}
	return opts, nil
}

// NewFromConfig creates a client from cfg. opts are applied after the
// settings from cfg and win over them.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(cfg.APIURL, cfg.Token, append(base, opts...)...)
}
