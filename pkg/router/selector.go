package router

import (
	"fmt"
	"strings"

	"github.com/zen-systems/agentrouter/pkg/config"
	"github.com/zen-systems/agentrouter/pkg/stats"
)

// Optimize is a selection strategy applied after the baseline rule lookup.
type Optimize string

const (
	OptimizeQuality Optimize = "quality"
	OptimizeCost    Optimize = "cost"
	OptimizeSpeed   Optimize = "speed"
)

// ParseOptimize validates an optimization mode string.
func ParseOptimize(s string) (Optimize, error) {
	switch Optimize(s) {
	case OptimizeQuality, OptimizeCost, OptimizeSpeed:
		return Optimize(s), nil
	case "":
		return "", fmt.Errorf("optimize mode required (quality, cost, or speed)")
	default:
		return "", fmt.Errorf("invalid optimize mode %q (must be quality, cost, or speed)", s)
	}
}

// Selector picks agents for task types according to the routing rules and
// an optimization mode, counting each decision in an injected tally store.
type Selector struct {
	config *config.RoutingConfig
	store  stats.Store
	tally  *stats.Tally
}

// NewSelector creates a selector over the routing config, loading the
// current tally from the store.
func NewSelector(cfg *config.RoutingConfig, store stats.Store) (*Selector, error) {
	tally, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tally: %w", err)
	}
	return &Selector{config: cfg, store: store, tally: tally}, nil
}

// Tally returns the current tally.
func (s *Selector) Tally() *stats.Tally {
	return s.tally
}

// BestAgent returns the primary agent for a task type, or the default
// agent for unknown types.
func (s *Selector) BestAgent(taskType string) string {
	if rule, ok := s.config.Rule(taskType); ok {
		return rule.Primary
	}
	return s.config.Default.Primary
}

// CheapestAgent returns the cheapest agent whose strengths intersect the
// required capabilities. Equal costs resolve to the agent declared first.
// If no agent qualifies, the default agent is returned.
func (s *Selector) CheapestAgent(capabilities []string) string {
	cheapest := ""
	cheapestCost := 0.0

	for _, profile := range s.config.Agents {
		if !hasCapability(profile, capabilities) {
			continue
		}
		if cheapest == "" || profile.CostPer1M < cheapestCost {
			cheapest = profile.Name
			cheapestCost = profile.CostPer1M
		}
	}

	if cheapest == "" {
		return s.config.Default.Primary
	}
	return cheapest
}

// Select chooses primary and fallback agents for a task type, applying the
// optimization mode, and counts the decision in the tally. The tally is
// persisted before returning; a persist failure is the only error path.
func (s *Selector) Select(taskType string, optimize Optimize) (*Decision, error) {
	rule, ok := s.config.Rule(taskType)
	if !ok {
		rule = s.config.Default
	}

	primary := rule.Primary
	fallback := rule.Fallback
	reason := rule.Reason

	switch optimize {
	case OptimizeCost:
		var capabilities []string
		if t, ok := s.config.TaskType(taskType); ok {
			capabilities = t.Keywords
		}
		primary = s.CheapestAgent(capabilities)
		reason = "Cost-optimized: " + reason

	case OptimizeSpeed:
		if profile, ok := s.config.Agent(primary); ok && !profile.Speed.FastOrBetter() {
			for _, candidate := range s.config.Agents {
				if candidate.Speed.FastOrBetter() && candidate.HasStrength(taskType) {
					primary = candidate.Name
					reason = "Speed-optimized: " + reason
					break
				}
			}
		}
	}

	decision := &Decision{
		TaskType:      taskType,
		Primary:       primary,
		Fallback:      fallback,
		Reason:        reason,
		EstimatedCost: s.estimateCost(primary),
		Alternatives:  s.alternatives(taskType, primary, fallback),
	}

	s.tally.Record(primary, taskType)
	if err := s.store.Save(s.tally); err != nil {
		return nil, fmt.Errorf("failed to persist tally: %w", err)
	}

	return decision, nil
}

// hasCapability reports whether the profile's strengths intersect the
// required capabilities. A strength matches a capability when either
// contains the other, so a keyword-derived capability like "script"
// matches the "scripts" strength tag.
func hasCapability(profile config.AgentProfile, capabilities []string) bool {
	for _, capability := range capabilities {
		for _, strength := range profile.Strengths {
			if strings.Contains(strength, capability) || strings.Contains(capability, strength) {
				return true
			}
		}
	}
	return false
}

// alternatives lists agents with the task type among their strengths,
// excluding the chosen primary and fallback, in table order.
func (s *Selector) alternatives(taskType, primary, fallback string) []string {
	var alts []string
	for _, profile := range s.config.Agents {
		if profile.Name == primary || profile.Name == fallback {
			continue
		}
		if profile.HasStrength(taskType) {
			alts = append(alts, profile.Name)
		}
	}
	return alts
}

// estimateCost renders the primary agent's cost. Zero cost renders as FREE.
func (s *Selector) estimateCost(agent string) string {
	profile, ok := s.config.Agent(agent)
	if !ok {
		return "unknown"
	}
	if profile.CostPer1M == 0 {
		return "FREE"
	}
	return fmt.Sprintf("$%.2f/1M tokens", profile.CostPer1M)
}
