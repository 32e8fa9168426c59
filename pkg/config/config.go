package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration.
type Config struct {
	RoutingConfig *RoutingConfig
	Aliases       *AgentAliases
	ConfigDir     string
	StatsPath     string
	HistoryPath   string
}

// Load reads configuration from ~/.agentrouter, falling back to built-in
// defaults for anything not present on disk.
func Load() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	cfg := &Config{
		ConfigDir:   configDir,
		StatsPath:   filepath.Join(configDir, "stats.json"),
		HistoryPath: filepath.Join(configDir, "history.db"),
	}

	routingPath := filepath.Join(configDir, "routing.yaml")
	if _, err := os.Stat(routingPath); err == nil {
		routing, err := LoadRoutingConfig(routingPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load routing config: %w", err)
		}
		cfg.RoutingConfig = routing
	} else {
		cfg.RoutingConfig = DefaultRoutingConfig()
	}

	aliases, err := LoadAliasesWithFallback("")
	if err != nil {
		return nil, fmt.Errorf("failed to load agent aliases: %w", err)
	}
	cfg.Aliases = aliases

	return cfg, nil
}

// LoadWithRoutingFile loads config with a specific routing file.
func LoadWithRoutingFile(routingPath string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	routing, err := LoadRoutingConfig(routingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load routing config from %s: %w", routingPath, err)
	}
	cfg.RoutingConfig = routing

	return cfg, nil
}

func getConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".agentrouter")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return configDir, nil
}
