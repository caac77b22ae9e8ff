package market

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"ghostx-api/pkg/confkit"
)

// Config describes the market data section loaded from its own YAML file.
type Config struct {
	// Tracked lists the symbols served by the price listing endpoint.
	Tracked []string `yaml:"tracked"`

	TimeoutRaw string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"`
}

// LoadConfig reads market configuration from disk.
func LoadConfig(path string) (*Config, error) {
	confkit.LoadDotenvOnce()
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open market config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from an io.Reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read market config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal market config: %w", err)
	}
	if err := cfg.normalise(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when no market file is given.
func DefaultConfig() *Config {
	return &Config{
		Tracked: append([]string(nil), DefaultTracked...),
		Timeout: defaultQueryTimeout,
	}
}

func (c *Config) normalise() error {
	if len(c.Tracked) == 0 {
		c.Tracked = append([]string(nil), DefaultTracked...)
	}
	for i, symbol := range c.Tracked {
		symbol = strings.TrimSpace(os.ExpandEnv(symbol))
		if symbol == "" {
			return fmt.Errorf("market config: tracked symbol %d is empty", i)
		}
		c.Tracked[i] = symbol
	}

	c.TimeoutRaw = strings.TrimSpace(os.ExpandEnv(c.TimeoutRaw))
	if c.TimeoutRaw == "" {
		c.Timeout = defaultQueryTimeout
		return nil
	}
	d, err := time.ParseDuration(c.TimeoutRaw)
	if err != nil {
		return fmt.Errorf("market config: invalid timeout %q: %w", c.TimeoutRaw, err)
	}
	if d <= 0 {
		return fmt.Errorf("market config: timeout must be positive, got %s", d)
	}
	c.Timeout = d
	return nil
}
