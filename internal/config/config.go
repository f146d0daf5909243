// Package config loads tool configuration: database location, an optional
// external question bank, and per-dimension minimum level overrides. Values
// come from ~/.mlready/config.yaml (or ./config.yaml) with MLREADY_* env
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved tool configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `mapstructure:"db_path"`
	// BankPath optionally points at an external question bank JSON file;
	// empty means the embedded bank.
	BankPath string `mapstructure:"bank_path"`
	// NoColor disables terminal styling.
	NoColor bool `mapstructure:"no_color"`
	// MinimumLevels overrides per-dimension thresholds by dimension name.
	MinimumLevels map[string]int `mapstructure:"minimum_levels"`
}

// Load reads configuration from file and environment. A missing config file
// is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".mlready"))
	}

	v.SetEnvPrefix("MLREADY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("bank_path", "")
	v.SetDefault("no_color", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	for dim, lvl := range cfg.MinimumLevels {
		if lvl < 1 || lvl > 5 {
			return nil, fmt.Errorf("minimum level for %q: %d out of range 1-5", dim, lvl)
		}
	}

	return &cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mlready.db"
	}
	return filepath.Join(home, ".mlready", "mlready.db")
}
