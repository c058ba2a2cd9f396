package server

import (
	"testing"
)

func TestBuildToolCatalog_ReturnsAllTools(t *testing.T) {
	catalog := buildToolCatalog()
	if len(catalog) != 3 {
		names := make([]string, len(catalog))
		for i, td := range catalog {
			names[i] = td.Name
		}
		t.Fatalf("expected 3 tools, got %d: %v", len(catalog), names)
	}
}

func TestBuildToolCatalog_AllToolsHaveRequiredFields(t *testing.T) {
	for _, td := range buildToolCatalog() {
		if td.Name == "" {
			t.Error("tool has empty name")
		}
		if td.Description == "" {
			t.Errorf("tool %q has empty description", td.Name)
		}
		if td.Method == "" {
			t.Errorf("tool %q has empty method", td.Name)
		}
		if td.Path == "" {
			t.Errorf("tool %q has empty path", td.Name)
		}
	}
}

func TestBuildToolCatalog_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, td := range buildToolCatalog() {
		if seen[td.Name] {
			t.Errorf("duplicate tool name: %q", td.Name)
		}
		seen[td.Name] = true
	}
}

func TestBuildToolCatalog_ParamsPlacement(t *testing.T) {
	for _, td := range buildToolCatalog() {
		for _, p := range td.Params {
			if p.In != "query" && p.In != "body" {
				t.Errorf("tool %q param %q has invalid location %q", td.Name, p.Name, p.In)
			}
			if p.In == "body" && td.Method != "POST" {
				t.Errorf("tool %q sends a body param with %s", td.Name, td.Method)
			}
		}
	}
}
