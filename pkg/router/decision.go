package router

// Decision captures a routing decision.
type Decision struct {
	TaskType      string   `json:"task_type"`
	Primary       string   `json:"primary_agent"`
	Fallback      string   `json:"fallback_agent"`
	Confidence    float64  `json:"confidence"`
	Reason        string   `json:"reason"`
	EstimatedCost string   `json:"estimated_cost"`
	Alternatives  []string `json:"alternative_agents,omitempty"`
}

// RouteInfo describes one configured routing rule.
type RouteInfo struct {
	TaskType string
	Keywords []string
	Primary  string
	Fallback string
	Reason   string
}
