package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// AgentAliases manages agent alias resolution.
type AgentAliases struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliases reads agent aliases from a YAML file.
func LoadAliases(path string) (*AgentAliases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var aliases AgentAliases
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, err
	}

	if aliases.Aliases == nil {
		aliases.Aliases = make(map[string]string)
	}

	return &aliases, nil
}

// LoadAliasesWithFallback loads aliases from the user config dir, falling
// back to the provided default path, then to the built-in aliases.
func LoadAliasesWithFallback(defaultPath string) (*AgentAliases, error) {
	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".agentrouter", "agents.yaml")
		if _, err := os.Stat(userPath); err == nil {
			return LoadAliases(userPath)
		}
	}

	if defaultPath != "" {
		if _, err := os.Stat(defaultPath); err == nil {
			return LoadAliases(defaultPath)
		}
	}

	return DefaultAliases(), nil
}

// Resolve returns the canonical agent name for an alias.
// If the input is not an alias, it returns the input unchanged.
func (a *AgentAliases) Resolve(nameOrAlias string) string {
	if a == nil || a.Aliases == nil {
		return nameOrAlias
	}
	if canonical, ok := a.Aliases[nameOrAlias]; ok {
		return canonical
	}
	return nameOrAlias
}

// IsAlias returns true if the given string is a known alias.
func (a *AgentAliases) IsAlias(name string) bool {
	if a == nil || a.Aliases == nil {
		return false
	}
	_, ok := a.Aliases[name]
	return ok
}

// ListAliases returns the aliases sorted by alias name.
func (a *AgentAliases) ListAliases() []string {
	if a == nil || a.Aliases == nil {
		return nil
	}
	aliases := make([]string, 0, len(a.Aliases))
	for alias := range a.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Validate checks that every alias target is a defined agent.
func (a *AgentAliases) Validate(cfg *RoutingConfig) []error {
	if a == nil || cfg == nil {
		return nil
	}

	var errs []error
	for _, alias := range a.ListAliases() {
		target := a.Aliases[alias]
		if _, ok := cfg.Agent(target); !ok {
			errs = append(errs, fmt.Errorf("alias %q: agent %q not defined", alias, target))
		}
	}
	return errs
}

// DefaultAliases returns the built-in agent aliases.
func DefaultAliases() *AgentAliases {
	return &AgentAliases{
		Aliases: map[string]string{
			"atlas": "ATLAS",
			"forge": "FORGE",
			"clio":  "CLIO",
			"bolt":  "BOLT",
			"nexus": "NEXUS",
			// Role aliases
			"builder":      "ATLAS",
			"orchestrator": "FORGE",
			"sysadmin":     "CLIO",
			"free":         "BOLT",
			"qa":           "NEXUS",
		},
	}
}
