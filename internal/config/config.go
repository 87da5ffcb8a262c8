// Package config loads run configuration from YAML with sensible
// defaults for every field.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Market policy names accepted in configuration.
const (
	MarketDrift   = "drift"
	MarketShuffle = "shuffle"
)

// Config holds everything needed to set up a world and run it.
type Config struct {
	Rounds int      `yaml:"rounds"`
	Seed   int64    `yaml:"seed"`
	Market string   `yaml:"market"`
	Items  []string `yaml:"items"`

	FuelInit        int64 `yaml:"fuel_init"`
	FuelIncrease    int64 `yaml:"fuel_increase"`
	BalanceInit     int64 `yaml:"balance_init"`
	BalanceIncrease int64 `yaml:"balance_increase"`
	WorkToMoney     int64 `yaml:"work_to_money"`
	TradeFee        int64 `yaml:"trade_fee"`
}

// Default returns the canonical configuration: the iron catalog and the
// standard fuel and balance tunables.
func Default() Config {
	return Config{
		Rounds: 1000,
		Seed:   42,
		Market: MarketDrift,
		Items: []string{
			"iron_ore",
			"iron_ingot",
			"iron_sword",
			"iron_sheets",
			"iron_hammer",
		},
		FuelInit:        100,
		FuelIncrease:    25,
		BalanceInit:     100,
		BalanceIncrease: 0,
		WorkToMoney:     10,
		TradeFee:        50,
	}
}

// Load reads a YAML file over the defaults: fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("config: rounds must be positive, got %d", c.Rounds)
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("config: item catalog is empty")
	}
	if c.Market != MarketDrift && c.Market != MarketShuffle {
		return fmt.Errorf("config: unknown market policy %q", c.Market)
	}
	if c.FuelInit < 0 || c.FuelIncrease < 0 {
		return fmt.Errorf("config: fuel settings must be non-negative")
	}
	if c.TradeFee < 0 {
		return fmt.Errorf("config: trade fee must be non-negative")
	}
	return nil
}
