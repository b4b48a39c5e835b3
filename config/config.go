package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/how0531/TradeTrack-1-sub000/journal"
	"github.com/how0531/TradeTrack-1-sub000/metrics"
	"github.com/how0531/TradeTrack-1-sub000/period"
)

// Environment variables read by ApplyEnv.
const (
	EnvDB        = "TRADETRACK_DB"
	EnvFrequency = "TRADETRACK_FREQUENCY"
	EnvLanguage  = "TRADETRACK_LANGUAGE"
)

// Config is the tradetrack configuration file.
type Config struct {
	Journal    JournalConfig       `json:"journal" yaml:"journal"`
	Portfolios []journal.Portfolio `json:"portfolios" yaml:"portfolios"`
	Report     ReportConfig        `json:"report" yaml:"report"`
}

// JournalConfig locates the trade store.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ReportConfig holds the defaults for the metrics and streaks commands.
type ReportConfig struct {
	Frequency        string   `json:"frequency" yaml:"frequency"`
	Language         string   `json:"language" yaml:"language"`
	ActivePortfolios []string `json:"active_portfolios,omitempty" yaml:"active_portfolios,omitempty"`
	StreakGapDays    int      `json:"streak_gap_days" yaml:"streak_gap_days"`
}

// LoadFromFile loads configuration from a file. The format follows the
// extension the same way SaveToFile does: YAML for .yaml/.yml, JSON for
// anything else with a YAML fallback. Keys missing from the file keep
// their Default values; an absent portfolios list keeps the default
// portfolio.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	cfg.Portfolios = nil

	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		// Try YAML before giving up
		if yerr := yaml.Unmarshal(data, cfg); yerr != nil {
			return nil, fmt.Errorf("parse config (tried JSON and YAML): %w", err)
		}
	}
	if cfg.Portfolios == nil {
		cfg.Portfolios = Default().Portfolios
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file, YAML for .yaml/.yml paths and
// indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}

	seen := map[string]bool{}
	for i, p := range c.Portfolios {
		if p.ID == "" {
			return fmt.Errorf("portfolios[%d].id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate portfolio id: %s", p.ID)
		}
		seen[p.ID] = true
		if p.InitialCapital < 0 {
			return fmt.Errorf("portfolio %s: initial_capital must not be negative", p.ID)
		}
	}

	if c.Report.Frequency != "" {
		if _, err := period.ParseFrequency(c.Report.Frequency); err != nil {
			return fmt.Errorf("report.frequency: %w", err)
		}
	}
	switch c.Report.Language {
	case "", "en", "zh":
	default:
		return fmt.Errorf("report.language must be 'en' or 'zh'")
	}
	for _, id := range c.Report.ActivePortfolios {
		if len(c.Portfolios) > 0 && !seen[id] {
			return fmt.Errorf("report.active_portfolios: unknown portfolio %s", id)
		}
	}
	if c.Report.StreakGapDays < 0 {
		return fmt.Errorf("report.streak_gap_days must not be negative")
	}
	return nil
}

// Frequency returns the parsed report frequency, daily when unset.
func (c *Config) Frequency() period.Frequency {
	f, err := period.ParseFrequency(c.Report.Frequency)
	if err != nil {
		return period.Daily
	}
	return f
}

// ApplyEnv loads envFile (ignored when missing) into the process
// environment without overriding variables already set, then copies the
// TRADETRACK_* variables over the file values.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvDB); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv(EnvFrequency); v != "" {
		c.Report.Frequency = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Report.Language = v
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath: "./tradetrack.sqlite",
		},
		Portfolios: []journal.Portfolio{
			{
				ID:             journal.DefaultPortfolioID,
				Name:           "Main",
				InitialCapital: metrics.FallbackCapital,
				ProfitColor:    "#22c55e",
				LossColor:      "#ef4444",
			},
		},
		Report: ReportConfig{
			Frequency:     string(period.Daily),
			Language:      "en",
			StreakGapDays: metrics.DefaultStreakGapDays,
		},
	}
}
