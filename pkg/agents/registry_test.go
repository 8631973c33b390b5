package agents

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistry_PromptLookup(t *testing.T) {
	r := NewRegistry()

	prompt, ok := r.Prompt(HealthCheckAgent)
	if !ok {
		t.Fatalf("expected built-in agent %q to exist", HealthCheckAgent)
	}
	if !strings.Contains(prompt, "Health Check Agent") {
		t.Errorf("persona for %q does not describe its role: %q", HealthCheckAgent, prompt)
	}

	if _, ok := r.Prompt("Billing Agent"); ok {
		t.Error("expected unknown agent to be absent")
	}
}

func TestRegistry_NamesStableOrder(t *testing.T) {
	r := NewRegistry()

	first := r.Names()
	if len(first) != 8 {
		t.Fatalf("expected 8 built-in agents, got %d", len(first))
	}
	second := r.Names()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("names order not stable: %v vs %v", first, second)
		}
	}
}

func TestRegistry_ReloadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	content := `{"Diet Agent": "Only discuss hydration.", "Night Shift Agent": "Triage after-hours requests."}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.ReloadFile(path); err != nil {
		t.Fatalf("ReloadFile failed: %v", err)
	}

	if got, _ := r.Prompt(DietAgent); got != "Only discuss hydration." {
		t.Errorf("override not applied, got %q", got)
	}
	if _, ok := r.Prompt("Night Shift Agent"); !ok {
		t.Error("new agent from file not registered")
	}
	// Untouched defaults survive the merge
	if _, ok := r.Prompt(WelcomeAgent); !ok {
		t.Error("built-in agent lost during reload")
	}
}

func TestRegistry_ReloadFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.ReloadFile(path); err == nil {
		t.Fatal("expected error for malformed agents file")
	}
	// Registry keeps serving the previous snapshot
	if _, ok := r.Prompt(WelcomeAgent); !ok {
		t.Error("registry lost defaults after failed reload")
	}
}

func TestServiceCatalog_Fixed(t *testing.T) {
	want := []string{
		"General Checkup",
		"Emergency Services",
		"COVID-19 Information",
		"Medicine Reminders",
		"Dietary Advice",
		"Mental Health Support",
	}

	got := ServiceCatalog()
	if len(got) != len(want) {
		t.Fatalf("expected %d services, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("service %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	// Mutating the returned slice must not disturb the catalog
	got[0] = "tampered"
	if ServiceCatalog()[0] != want[0] {
		t.Error("catalog order disturbed by caller mutation")
	}
}

func TestServiceAgent(t *testing.T) {
	cases := map[string]string{
		"health":    HealthCheckAgent,
		"mental":    MentalHealthAgent,
		"covid":     CovidAgent,
		"emergency": EmergencyAgent,
		"reminder":  MedicineAgent,
		"diet":      DietAgent,
	}
	for key, want := range cases {
		got, ok := ServiceAgent(key)
		if !ok || got != want {
			t.Errorf("ServiceAgent(%q) = %q, %v; want %q", key, got, ok, want)
		}
	}

	if _, ok := ServiceAgent("surgery"); ok {
		t.Error("expected unknown service key to be rejected")
	}
}
