// Package config loads runtime settings from an optional gambit.yaml next
// to the binary and from GAMBIT_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"gambit/engine"
	"gambit/searcher"
)

type Config struct {
	// Iterations is the search budget per move.
	Iterations int `mapstructure:"iterations"`
	// Policy names the rollout weighting: "base" or "no-development".
	Policy string `mapstructure:"policy"`
	// Games is how many self-play games the CLI plays.
	Games int `mapstructure:"games"`
	// MaxPlies caps a self-play game.
	MaxPlies int `mapstructure:"max_plies"`
	// Addr is the HTTP listen address.
	Addr string `mapstructure:"addr"`
	// Seed pins the search randomness when nonzero.
	Seed uint64 `mapstructure:"seed"`
	// Debug lowers the log level to debug.
	Debug bool `mapstructure:"debug"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("iterations", engine.DefaultIterations)
	v.SetDefault("policy", "base")
	v.SetDefault("games", 1)
	v.SetDefault("max_plies", engine.MaxPlies)
	v.SetDefault("addr", ":8080")
	v.SetDefault("seed", 0)
	v.SetDefault("debug", false)

	v.SetConfigName("gambit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GAMBIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxPlies <= 0 {
		return fmt.Errorf("max_plies must be positive, got %d", c.MaxPlies)
	}
	_, err := c.PolicyVariant()
	return err
}

// PolicyVariant maps the configured policy name to a rollout variant.
func (c *Config) PolicyVariant() (searcher.Variant, error) {
	switch c.Policy {
	case "base":
		return searcher.PolicyBase, nil
	case "no-development":
		return searcher.PolicyNoDevelopment, nil
	default:
		return searcher.PolicyBase, fmt.Errorf("unknown rollout policy %q", c.Policy)
	}
}
