package scenario

import (
	"sort"
	"sync"
)

// presets holds the named built-in scenarios. Access is guarded so that
// embedding programs can register their own presets at startup.
var presets = struct {
	mu sync.RWMutex
	m  map[string]Scenario
}{m: make(map[string]Scenario)}

// RegisterPreset adds a named scenario to the built-in set.
// If a preset with the same name exists, it is overwritten.
func RegisterPreset(name string, sc Scenario) {
	presets.mu.Lock()
	defer presets.mu.Unlock()
	presets.m[name] = sc
}

// Preset looks up a built-in scenario by name.
func Preset(name string) (Scenario, bool) {
	presets.mu.RLock()
	defer presets.mu.RUnlock()
	sc, ok := presets.m[name]
	return sc, ok
}

// PresetNames returns the names of all built-in scenarios, sorted.
func PresetNames() []string {
	presets.mu.RLock()
	defer presets.mu.RUnlock()
	names := make([]string, 0, len(presets.m))
	for name := range presets.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPreset("baseline", Scenario{
		Name:        "baseline",
		Description: "A mid-sized outbreak with slow recovery and light mixing.",
		Grid:        Size{Width: 50, Height: 50},
		Rates:       Rates{Infect: 0.4, Symptom: 0.3, Recover: 0.05, Move: 0.1},
		Seed:        Seed{Ratio: 0.01, State: "latent"},
		Steps:       DefaultSteps,
	})
	RegisterPreset("flash", Scenario{
		Name:        "flash",
		Description: "A fast-burning epidemic that sweeps the grid and dies out quickly.",
		Grid:        Size{Width: 40, Height: 40},
		Rates:       Rates{Infect: 0.9, Symptom: 0.8, Recover: 0.3, Move: 0.25},
		Seed:        Seed{Ratio: 0.02, State: "infected"},
		Steps:       60,
	})
	RegisterPreset("smolder", Scenario{
		Name:        "smolder",
		Description: "A low-transmission epidemic on a static population.",
		Grid:        Size{Width: 60, Height: 60},
		Rates:       Rates{Infect: 0.15, Symptom: 0.2, Recover: 0.02},
		Seed:        Seed{Ratio: 0.005, State: "latent"},
		Steps:       300,
	})
}
