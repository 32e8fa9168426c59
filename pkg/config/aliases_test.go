package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultAliasesResolve(t *testing.T) {
	aliases := DefaultAliases()

	if got := aliases.Resolve("atlas"); got != "ATLAS" {
		t.Fatalf("expected ATLAS, got %s", got)
	}
	if got := aliases.Resolve("free"); got != "BOLT" {
		t.Fatalf("expected BOLT, got %s", got)
	}
	// Unknown names pass through unchanged.
	if got := aliases.Resolve("ATLAS"); got != "ATLAS" {
		t.Fatalf("expected passthrough, got %s", got)
	}
}

func TestAliasesValidate(t *testing.T) {
	cfg := DefaultRoutingConfig()

	if errs := DefaultAliases().Validate(cfg); len(errs) != 0 {
		t.Fatalf("default aliases invalid: %v", errs)
	}

	broken := &AgentAliases{Aliases: map[string]string{"ghost": "GHOST"}}
	if errs := broken.Validate(cfg); len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
}

func TestLoadAliasesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	data := []byte("aliases:\n  speedy: BOLT\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !aliases.IsAlias("speedy") || aliases.Resolve("speedy") != "BOLT" {
		t.Fatalf("unexpected aliases: %+v", aliases.Aliases)
	}
}

func TestLoadAliasesWithFallbackDefaults(t *testing.T) {
	home := t.TempDir()
	setHomeEnv(t, home)

	aliases, err := LoadAliasesWithFallback("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if aliases.Resolve("orchestrator") != "FORGE" {
		t.Fatalf("expected built-in aliases")
	}
}
