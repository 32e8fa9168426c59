package router

import (
	"strings"
	"testing"

	"github.com/zen-systems/agentrouter/pkg/config"
)

func TestClassifyScenarios(t *testing.T) {
	c := NewClassifier(config.DefaultRoutingConfig())

	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{
			name:        "building",
			description: "Build a new CLI tool",
			expected:    "building",
		},
		{
			name:        "linux",
			description: "Deploy to Ubuntu server via SSH",
			expected:    "linux",
		},
		{
			name:        "testing",
			description: "Run qa validation tests on the API",
			expected:    "testing",
		},
		{
			name:        "code execution",
			description: "Execute the batch script",
			expected:    "code_execution",
		},
		{
			name:        "documentation",
			description: "Write a readme guide for the project",
			expected:    "documentation",
		},
		{
			name:        "debugging",
			description: "Fix the broken login issue",
			expected:    "debugging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskType, confidence := c.Classify(tt.description)
			if taskType != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, taskType)
			}
			if confidence <= 0 || confidence > 1 {
				t.Fatalf("confidence out of range: %.2f", confidence)
			}
		})
	}
}

func TestClassifyDefaultFallback(t *testing.T) {
	c := NewClassifier(config.DefaultRoutingConfig())

	for _, description := range []string{"", "12345", "!!! ??? ...", "zzz qqq xxx"} {
		taskType, confidence := c.Classify(description)
		if taskType != DefaultTaskType {
			t.Fatalf("Classify(%q): expected %s, got %s", description, DefaultTaskType, taskType)
		}
		if confidence != 0.3 {
			t.Fatalf("Classify(%q): expected confidence 0.3, got %.2f", description, confidence)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(config.DefaultRoutingConfig())

	upperType, _ := c.Classify("BUILD a tool")
	lowerType, _ := c.Classify("build a tool")
	if upperType != lowerType {
		t.Fatalf("case sensitivity: %s != %s", upperType, lowerType)
	}
}

func TestClassifyVeryLongInput(t *testing.T) {
	c := NewClassifier(config.DefaultRoutingConfig())

	taskType, confidence := c.Classify(strings.Repeat("test everything and verify the qa checks ", 10000))
	if taskType != "testing" {
		t.Fatalf("expected testing, got %s", taskType)
	}
	if confidence > 1.0 {
		t.Fatalf("confidence not capped: %.2f", confidence)
	}
}

func TestClassifyTieBreakDeclarationOrder(t *testing.T) {
	cfg := &config.RoutingConfig{
		TaskTypes: []config.TaskType{
			{Name: "alpha", Keywords: []string{"shared"}},
			{Name: "beta", Keywords: []string{"shared"}},
		},
	}
	c := NewClassifier(cfg)

	taskType, _ := c.Classify("a shared keyword")
	if taskType != "alpha" {
		t.Fatalf("tie should go to first declared task type, got %s", taskType)
	}
}

func TestClassifyKeywordCountsOnce(t *testing.T) {
	cfg := &config.RoutingConfig{
		TaskTypes: []config.TaskType{
			{Name: "alpha", Keywords: []string{"echo", "other"}},
		},
	}
	c := NewClassifier(cfg)

	// "echo" appears three times but scores once: 1 of 2 keywords.
	_, confidence := c.Classify("echo echo echo")
	if confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %.2f", confidence)
	}
}
