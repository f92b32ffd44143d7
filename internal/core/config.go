package core

import (
	"fmt"
	"strings"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager defines the interface for loading and
// validating configuration from the .hbdconfig file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .hbdconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultGlobalConfig returns a GlobalConfig populated with defaults.
func defaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		KBOverridesFile: "healthbuddy_kb.yaml",
		DecisionLogFile: ".hbd_decisions.jsonl",
	}
}

// LoadGlobalConfig reads the .hbdconfig file from the base path using
// Viper. If the file does not exist, defaults are returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := defaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".hbdconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("kb.overrides_file", cfg.KBOverridesFile)
	v.SetDefault("log.file", cfg.DecisionLogFile)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .hbdconfig: %w", err)
	}

	cfg.KBOverridesFile = v.GetString("kb.overrides_file")
	cfg.DecisionLogFile = v.GetString("log.file")

	if links := v.GetStringMapString("routes.links"); len(links) > 0 {
		cfg.RouteLinks = links
	}

	return cfg, nil
}

// ValidateConfig checks the configuration for invalid values and
// returns a clear error message identifying every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.KBOverridesFile == "" {
		errs = append(errs, "kb.overrides_file must not be empty")
	}
	if cfg.DecisionLogFile == "" {
		errs = append(errs, "log.file must not be empty")
	}
	for label, url := range cfg.RouteLinks {
		if strings.TrimSpace(url) == "" {
			errs = append(errs, fmt.Sprintf("routes.links[%q] must not be empty", label))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
