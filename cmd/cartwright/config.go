// Config loading for the cartwright CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fairwayworks/cartwright/pkg/pricing"
	"github.com/fairwayworks/cartwright/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyLaborRate = "labor_rate"
	cfgKeyZoneCosts = "zone_costs"
	cfgKeyCurrency  = "currency"

	defaultBackend   = "sqlite"
	defaultLaborRate = 85.0
	defaultCurrency  = "USD"
)

// cliConfig is the loaded viper instance, set by PersistentPreRunE.
var cliConfig *viper.Viper

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Cartwright CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Hourly labor rate applied to option labor hours
labor_rate: 85

# Display currency for price output
currency: USD

# Base cost attributable to each zone; material multipliers apply to these
zone_costs:
  body: 1200
  seats: 800
  roof: 400
  metal: 300
  glass: 250
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLaborRate, defaultLaborRate)
	v.SetDefault(cfgKeyCurrency, defaultCurrency)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// loadRates builds the pricing rates from the loaded config. Zones without a
// configured base cost simply contribute nothing to material adjustments.
func loadRates() (pricing.Rates, error) {
	rates := pricing.Rates{
		LaborRate:     cliConfig.GetFloat64(cfgKeyLaborRate),
		ZoneBaseCosts: map[string]float64{},
	}
	if err := cliConfig.UnmarshalKey(cfgKeyZoneCosts, &rates.ZoneBaseCosts); err != nil {
		return pricing.Rates{}, fmt.Errorf("parse zone_costs: %w", err)
	}
	if rates.LaborRate < 0 {
		return pricing.Rates{}, fmt.Errorf("labor_rate must be non-negative: %w", types.ErrInvalidData)
	}
	return rates, nil
}

// currency returns the configured display currency code.
func currency() string {
	return cliConfig.GetString(cfgKeyCurrency)
}
