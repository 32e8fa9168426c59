package router

import (
	"strings"

	"github.com/zen-systems/agentrouter/pkg/config"
)

// DefaultTaskType is returned when no keyword matches a description.
const DefaultTaskType = "planning"

// defaultConfidence is the fixed confidence of the no-match fallback.
const defaultConfidence = 0.3

// Classifier maps free-text task descriptions to task types by keyword
// matching against the routing tables.
type Classifier struct {
	config *config.RoutingConfig
}

// NewClassifier creates a classifier over the given routing config.
func NewClassifier(cfg *config.RoutingConfig) *Classifier {
	return &Classifier{config: cfg}
}

// Classify determines the task type and a confidence in [0,1] for a
// description. It is total over all inputs: anything with no keyword match
// falls back to DefaultTaskType with a fixed low confidence.
//
// Each task type scores one point per keyword found as a substring of the
// lowercased description. The highest score wins; ties go to the task type
// declared first in the table. Confidence is the winner's score divided by
// its keyword count, capped at 1.0.
func (c *Classifier) Classify(description string) (string, float64) {
	descLower := strings.ToLower(description)

	bestType := ""
	bestScore := 0
	bestKeywords := 0

	for _, taskType := range c.config.TaskTypes {
		score := 0
		for _, keyword := range taskType.Keywords {
			if strings.Contains(descLower, strings.ToLower(keyword)) {
				score++
			}
		}
		if score > bestScore {
			bestType = taskType.Name
			bestScore = score
			bestKeywords = len(taskType.Keywords)
		}
	}

	if bestScore == 0 {
		return DefaultTaskType, defaultConfidence
	}

	confidence := float64(bestScore) / float64(bestKeywords)
	if confidence > 1.0 {
		confidence = 1.0
	}

	return bestType, confidence
}
