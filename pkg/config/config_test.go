package config

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestValidate(t *testing.T) {
	valid := Config{
		LLM:            jsoniter.RawMessage(`[{"type":"openai"}]`),
		HospitalNumber: "923412583056",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	missingLLM := valid
	missingLLM.LLM = nil
	if err := missingLLM.Validate(); err == nil {
		t.Error("expected error for missing llm section")
	}

	missingHospital := valid
	missingHospital.HospitalNumber = ""
	if err := missingHospital.Validate(); err == nil {
		t.Error("expected error for missing hospital_number")
	}

	for _, mode := range []string{"", "deeplink", "provider"} {
		c := valid
		c.EmergencyMode = mode
		if err := c.Validate(); err != nil {
			t.Errorf("emergency_mode %q rejected: %v", mode, err)
		}
	}

	badMode := valid
	badMode.EmergencyMode = "carrier-pigeon"
	if err := badMode.Validate(); err == nil {
		t.Error("expected error for unknown emergency_mode")
	}
}

func TestLoadSystemConfig_Defaults(t *testing.T) {
	cfg := LoadSystemConfig(filepath.Join(t.TempDir(), "does-not-exist.json"))

	def := DefaultSystemConfig()
	if *cfg != *def {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadSystemConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.json")
	if err := os.WriteFile(path, []byte(`{"http_port": 9090, "log_level": "debug"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadSystemConfig(path)
	if cfg.HTTPPort != 9090 {
		t.Errorf("http_port override not applied: %d", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level override not applied: %q", cfg.LogLevel)
	}
	if cfg.MaxRetries != DefaultSystemConfig().MaxRetries {
		t.Errorf("unspecified field lost its default: %d", cfg.MaxRetries)
	}
}

func TestLoadSystemConfig_CorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadSystemConfig(path)
	if cfg.HTTPPort != DefaultSystemConfig().HTTPPort {
		t.Errorf("corrupt file should fall back to defaults, got %+v", cfg)
	}
}
