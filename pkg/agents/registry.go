package agents

import (
	"fmt"
	"os"
	"sort"
	"sync/atomic"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Registry holds the agent name -> persona prompt mapping. Snapshots are
// immutable; ReloadFile swaps in a fresh map atomically so in-flight
// lookups never observe a partial state.
type Registry struct {
	personas atomic.Pointer[map[string]string]
}

// NewRegistry builds a registry preloaded with the built-in personas.
func NewRegistry() *Registry {
	r := &Registry{}
	snapshot := make(map[string]string, len(defaultPersonas))
	for name, prompt := range defaultPersonas {
		snapshot[name] = prompt
	}
	r.personas.Store(&snapshot)
	return r
}

// Prompt returns the persona prompt for an agent name.
func (r *Registry) Prompt(name string) (string, bool) {
	p, ok := (*r.personas.Load())[name]
	return p, ok
}

// Names returns all registered agent names in stable order.
func (r *Registry) Names() []string {
	snapshot := *r.personas.Load()
	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReloadFile merges persona overrides from a JSON file
// ({"Agent Name": "prompt", ...}) over the built-in defaults and swaps the
// result in. Defaults stay intact for agents the file does not mention.
func (r *Registry) ReloadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read agents file: %w", err)
	}

	var overrides map[string]string
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("failed to parse agents file: %w", err)
	}

	snapshot := make(map[string]string, len(defaultPersonas)+len(overrides))
	for name, prompt := range defaultPersonas {
		snapshot[name] = prompt
	}
	for name, prompt := range overrides {
		snapshot[name] = prompt
	}

	r.personas.Store(&snapshot)
	return nil
}
