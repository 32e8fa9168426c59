// Package router classifies free-text task descriptions and selects agents
// for them according to static routing tables.
package router

import (
	"github.com/zen-systems/agentrouter/pkg/config"
	"github.com/zen-systems/agentrouter/pkg/stats"
)

// Router classifies a task description and selects an agent for it.
type Router struct {
	classifier *Classifier
	selector   *Selector
	config     *config.RoutingConfig
}

// New creates a router over the routing config, counting decisions in the
// given tally store.
func New(cfg *config.RoutingConfig, store stats.Store) (*Router, error) {
	selector, err := NewSelector(cfg, store)
	if err != nil {
		return nil, err
	}
	return &Router{
		classifier: NewClassifier(cfg),
		selector:   selector,
		config:     cfg,
	}, nil
}

// Route classifies the description and selects agents for it. Exactly one
// tally increment happens per successful call.
func (r *Router) Route(description string, optimize Optimize) (*Decision, error) {
	taskType, confidence := r.classifier.Classify(description)

	decision, err := r.selector.Select(taskType, optimize)
	if err != nil {
		return nil, err
	}
	decision.Confidence = confidence

	return decision, nil
}

// Classify determines the task type and confidence for a description
// without selecting an agent or touching the tally.
func (r *Router) Classify(description string) (string, float64) {
	return r.classifier.Classify(description)
}

// BestAgent returns the primary agent for a task type.
func (r *Router) BestAgent(taskType string) string {
	return r.selector.BestAgent(taskType)
}

// CheapestAgent returns the cheapest agent with any of the capabilities.
func (r *Router) CheapestAgent(capabilities []string) string {
	return r.selector.CheapestAgent(capabilities)
}

// Tally returns the current decision tally.
func (r *Router) Tally() *stats.Tally {
	return r.selector.Tally()
}

// Routes returns the configured routing rules joined with their keywords.
func (r *Router) Routes() []RouteInfo {
	var routes []RouteInfo
	for _, rule := range r.config.Rules {
		info := RouteInfo{
			TaskType: rule.TaskType,
			Primary:  rule.Primary,
			Fallback: rule.Fallback,
			Reason:   rule.Reason,
		}
		if t, ok := r.config.TaskType(rule.TaskType); ok {
			info.Keywords = t.Keywords
		}
		routes = append(routes, info)
	}
	return routes
}
