package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/claude/liftcalc/internal/calc"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Gym        GymConfig        `yaml:"gym"`
	Warmup     WarmupConfig     `yaml:"warmup"`
	Increments IncrementsConfig `yaml:"increments"`
	Tailscale  TailscaleConfig  `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// GymConfig holds the physical defaults every calculation falls back to.
type GymConfig struct {
	BarWeight    float64 `yaml:"bar_weight"`
	RoundingStep float64 `yaml:"rounding_step"`
	WarmupOffset float64 `yaml:"warmup_offset"`
}

// WarmupConfig selects the warm-up policy and, for the percent policy, an
// optional custom ladder.
type WarmupConfig struct {
	Policy string            `yaml:"policy"` // "percent" or "offset"
	Ladder []calc.LadderStep `yaml:"ladder"`
}

// IncrementsConfig carries optional per-lift increment overrides, keyed by
// lowercase lift name, each mapping felt tags to deltas.
type IncrementsConfig struct {
	Mode  string                        `yaml:"mode"` // "absolute" or "percent"
	Lifts map[string]map[string]float64 `yaml:"lifts"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Default returns a config with the stock gym settings: 20 kg bar, 2.5 kg
// rounding, 7.5 kg warm-up offset, percent-ramp warm-ups, absolute
// increments.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8484},
		Gym: GymConfig{
			BarWeight:    20,
			RoundingStep: 2.5,
			WarmupOffset: 7.5,
		},
		Warmup:     WarmupConfig{Policy: string(calc.PolicyPercentRamp)},
		Increments: IncrementsConfig{Mode: string(calc.ModeAbsolute)},
	}
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. Env vars use the prefix LIFTCALC_ and
// underscore-separated paths:
//
//	LIFTCALC_SERVER_HOST, LIFTCALC_SERVER_PORT,
//	LIFTCALC_GYM_BAR_WEIGHT, LIFTCALC_GYM_ROUNDING_STEP,
//	LIFTCALC_GYM_WARMUP_OFFSET, LIFTCALC_WARMUP_POLICY,
//	LIFTCALC_TS_HOSTNAME, LIFTCALC_TS_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTCALC_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTCALC_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTCALC_GYM_BAR_WEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Gym.BarWeight = f
		}
	}
	if v := os.Getenv("LIFTCALC_GYM_ROUNDING_STEP"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Gym.RoundingStep = f
		}
	}
	if v := os.Getenv("LIFTCALC_GYM_WARMUP_OFFSET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Gym.WarmupOffset = f
		}
	}
	if v := os.Getenv("LIFTCALC_WARMUP_POLICY"); v != "" {
		cfg.Warmup.Policy = v
	}
	if v := os.Getenv("LIFTCALC_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("LIFTCALC_TS_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Gym.BarWeight <= 0 {
		return fmt.Errorf("gym.bar_weight must be positive")
	}
	if c.Gym.RoundingStep <= 0 {
		return fmt.Errorf("gym.rounding_step must be positive")
	}
	switch calc.WarmupPolicy(c.Warmup.Policy) {
	case calc.PolicyPercentRamp, calc.PolicyOffset:
	default:
		return fmt.Errorf("warmup.policy must be %q or %q", calc.PolicyPercentRamp, calc.PolicyOffset)
	}
	switch calc.Mode(c.Increments.Mode) {
	case calc.ModeAbsolute, calc.ModePercent:
	default:
		return fmt.Errorf("increments.mode must be %q or %q", calc.ModeAbsolute, calc.ModePercent)
	}
	for i, ls := range c.Warmup.Ladder {
		if ls.Reps <= 0 || ls.Percent <= 0 || ls.Percent > 100 {
			return fmt.Errorf("warmup.ladder[%d]: reps and percent must be positive, percent at most 100", i)
		}
	}
	return nil
}

// WarmupPolicy returns the configured policy as the calc enum.
func (c *Config) WarmupPolicy() calc.WarmupPolicy {
	return calc.WarmupPolicy(c.Warmup.Policy)
}

// Mode returns the configured increment mode as the calc enum.
func (c *Config) Mode() calc.Mode {
	return calc.Mode(c.Increments.Mode)
}

// LiftIncrements returns the configured override table for a lift, nil when
// none is configured. Felt-tag keys outside the enumeration are ignored.
func (c *Config) LiftIncrements(lift string) calc.IncrementTable {
	raw, ok := c.Increments.Lifts[strings.ToLower(strings.TrimSpace(lift))]
	if !ok {
		return nil
	}
	table := make(calc.IncrementTable, len(raw))
	for k, v := range raw {
		if tag, ok := calc.ParseFeltTag(k); ok {
			table[tag] = v
		}
	}
	return table
}
