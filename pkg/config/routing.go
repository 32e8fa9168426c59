package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Speed is an agent's speed tier, ordered slow < medium < fast < very_fast.
type Speed string

const (
	SpeedSlow     Speed = "slow"
	SpeedMedium   Speed = "medium"
	SpeedFast     Speed = "fast"
	SpeedVeryFast Speed = "very_fast"
)

// rank returns the ordering position of a speed tier. Unknown tiers rank
// below slow so they never count as fast.
func (s Speed) rank() int {
	switch s {
	case SpeedSlow:
		return 1
	case SpeedMedium:
		return 2
	case SpeedFast:
		return 3
	case SpeedVeryFast:
		return 4
	default:
		return 0
	}
}

// FastOrBetter reports whether the tier is fast or very_fast.
func (s Speed) FastOrBetter() bool {
	return s.rank() >= SpeedFast.rank()
}

// RoutingConfig holds the static routing tables: task types with their
// classification keywords, agent profiles, and category-to-agent rules.
//
// Tables are slices, not maps: scoring ties and equal-cost candidates are
// resolved by declaration order, so iteration order must be stable.
type RoutingConfig struct {
	TaskTypes []TaskType     `yaml:"task_types"`
	Agents    []AgentProfile `yaml:"agents"`
	Rules     []RoutingRule  `yaml:"rules"`
	Default   RoutingRule    `yaml:"default"`
}

// TaskType defines a category of tasks with its classification keywords.
type TaskType struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// AgentProfile describes an agent's capabilities and cost.
type AgentProfile struct {
	Name         string   `yaml:"name"`
	Model        string   `yaml:"model"`
	CostPer1M    float64  `yaml:"cost_per_1m_tokens"`
	Strengths    []string `yaml:"strengths"`
	Speed        Speed    `yaml:"speed"`
	Availability string   `yaml:"availability"`
}

// HasStrength reports whether the profile lists the given strength.
func (p AgentProfile) HasStrength(name string) bool {
	for _, s := range p.Strengths {
		if s == name {
			return true
		}
	}
	return false
}

// RoutingRule maps a task type to its primary and fallback agents.
type RoutingRule struct {
	TaskType string `yaml:"task_type"`
	Primary  string `yaml:"primary"`
	Fallback string `yaml:"fallback"`
	Reason   string `yaml:"reason"`
}

// TaskType returns the task type with the given name.
func (c *RoutingConfig) TaskType(name string) (TaskType, bool) {
	for _, t := range c.TaskTypes {
		if t.Name == name {
			return t, true
		}
	}
	return TaskType{}, false
}

// Agent returns the profile for the named agent.
func (c *RoutingConfig) Agent(name string) (AgentProfile, bool) {
	for _, a := range c.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentProfile{}, false
}

// Rule returns the routing rule for the given task type.
func (c *RoutingConfig) Rule(taskType string) (RoutingRule, bool) {
	for _, r := range c.Rules {
		if r.TaskType == taskType {
			return r, true
		}
	}
	return RoutingRule{}, false
}

// LoadRoutingConfig reads routing configuration from a YAML file.
func LoadRoutingConfig(path string) (*RoutingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg RoutingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyRoutingDefaults(&cfg)
	return &cfg, nil
}

// Validate checks table invariants: agent names are unique, and every rule
// (including the default) resolves to defined agents. Returns one error per
// violation.
func (c *RoutingConfig) Validate() []error {
	var errs []error

	seen := make(map[string]bool, len(c.Agents))
	for _, a := range c.Agents {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("agent with empty name"))
			continue
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("duplicate agent %q", a.Name))
		}
		seen[a.Name] = true
	}

	checkRule := func(label string, r RoutingRule) {
		if _, ok := c.Agent(r.Primary); !ok {
			errs = append(errs, fmt.Errorf("%s: primary agent %q not defined", label, r.Primary))
		}
		if _, ok := c.Agent(r.Fallback); !ok {
			errs = append(errs, fmt.Errorf("%s: fallback agent %q not defined", label, r.Fallback))
		}
	}

	for _, r := range c.Rules {
		checkRule(fmt.Sprintf("rule %q", r.TaskType), r)
	}
	checkRule("default", c.Default)

	return errs
}

// DefaultRoutingConfig returns the built-in routing tables.
func DefaultRoutingConfig() *RoutingConfig {
	cfg := &RoutingConfig{
		TaskTypes: []TaskType{
			{Name: "building", Keywords: []string{"build", "create", "make", "develop", "implement", "tool", "feature"}},
			{Name: "planning", Keywords: []string{"plan", "design", "architect", "strategy", "organize", "structure"}},
			{Name: "testing", Keywords: []string{"test", "verify", "validate", "check", "qa", "debug"}},
			{Name: "code_execution", Keywords: []string{"execute", "run", "script", "command", "bash"}},
			{Name: "linux", Keywords: []string{"linux", "ubuntu", "system", "server", "deploy", "ssh"}},
			{Name: "documentation", Keywords: []string{"document", "readme", "write", "doc", "guide"}},
			{Name: "review", Keywords: []string{"review", "analyze", "evaluate", "assess", "critique"}},
			{Name: "research", Keywords: []string{"research", "investigate", "explore", "study", "analyze"}},
			{Name: "debugging", Keywords: []string{"bug", "error", "fix", "broken", "issue", "problem"}},
		},
		Agents: []AgentProfile{
			{
				Name:         "ATLAS",
				Model:        "sonnet-4.5",
				CostPer1M:    3.00,
				Strengths:    []string{"tool_creation", "testing", "documentation", "building"},
				Speed:        SpeedFast,
				Availability: "high",
			},
			{
				Name:         "FORGE",
				Model:        "opus-4.5",
				CostPer1M:    15.00,
				Strengths:    []string{"planning", "architecture", "review", "complex_tasks"},
				Speed:        SpeedMedium,
				Availability: "medium",
			},
			{
				Name:         "CLIO",
				Model:        "sonnet-4.5",
				CostPer1M:    3.00,
				Strengths:    []string{"linux", "deployment", "system_admin", "automation"},
				Speed:        SpeedFast,
				Availability: "high",
			},
			{
				Name:         "BOLT",
				Model:        "grok",
				CostPer1M:    0.00,
				Strengths:    []string{"execution", "quick_tasks", "testing", "scripts"},
				Speed:        SpeedVeryFast,
				Availability: "very_high",
			},
			{
				Name:         "NEXUS",
				Model:        "sonnet-4.5",
				CostPer1M:    3.00,
				Strengths:    []string{"testing", "qa", "validation", "debugging"},
				Speed:        SpeedMedium,
				Availability: "medium",
			},
		},
		Rules: []RoutingRule{
			{TaskType: "code_execution", Primary: "BOLT", Fallback: "CLIO", Reason: "Free, fast execution"},
			{TaskType: "planning", Primary: "FORGE", Fallback: "ATLAS", Reason: "High quality orchestration"},
			{TaskType: "building", Primary: "ATLAS", Fallback: "BOLT", Reason: "Tool/feature creation specialist"},
			{TaskType: "linux", Primary: "CLIO", Fallback: "NEXUS", Reason: "System administration expert"},
			{TaskType: "testing", Primary: "NEXUS", Fallback: "ATLAS", Reason: "Comprehensive QA"},
			{TaskType: "review", Primary: "FORGE", Fallback: "NEXUS", Reason: "Quality review and architecture"},
			{TaskType: "documentation", Primary: "ATLAS", Fallback: "FORGE", Reason: "Clear technical writing"},
			{TaskType: "debugging", Primary: "NEXUS", Fallback: "CLIO", Reason: "Systematic problem solving"},
			{TaskType: "deployment", Primary: "CLIO", Fallback: "BOLT", Reason: "System deployment expert"},
			{TaskType: "research", Primary: "FORGE", Fallback: "ATLAS", Reason: "Deep analysis and planning"},
		},
	}

	applyRoutingDefaults(cfg)
	return cfg
}

func applyRoutingDefaults(cfg *RoutingConfig) {
	if cfg == nil {
		return
	}
	if cfg.Default.Primary == "" {
		cfg.Default.Primary = "FORGE"
	}
	if cfg.Default.Fallback == "" {
		cfg.Default.Fallback = "ATLAS"
	}
	if cfg.Default.Reason == "" {
		cfg.Default.Reason = "General task routing"
	}
}
