package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

func f(v float64) *float64 { return &v }

var Presets = map[string][]ItemConfig{
	"planets": {
		{ID: "mercury", Name: "Mercury", Scale: f(0.2), Importance: f(0.0)},
		{ID: "venus", Name: "Venus", Scale: f(0.45), Importance: f(0.1)},
		{ID: "earth", Name: "Earth", Scale: f(0.5), Importance: f(0.2)},
		{ID: "mars", Name: "Mars", Scale: f(0.3), Importance: f(0.3)},
		{ID: "jupiter", Name: "Jupiter", Scale: f(1.0), Importance: f(0.5)},
		{ID: "saturn", Name: "Saturn", Scale: f(0.9), Importance: f(0.65)},
		{ID: "uranus", Name: "Uranus", Scale: f(0.7), Importance: f(0.8)},
		{ID: "neptune", Name: "Neptune", Scale: f(0.7), Importance: f(0.95)},
	},
	"links": {
		{ID: "go", Name: "Go", Importance: f(0.1), URL: "https://go.dev"},
		{ID: "raylib", Name: "raylib", Importance: f(0.4), URL: "https://www.raylib.com"},
		{ID: "charm", Name: "Charm", Importance: f(0.7), URL: "https://charm.sh"},
	},
	"random": {
		{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"}, {Name: "delta"},
		{Name: "epsilon"}, {Name: "zeta"}, {Name: "eta"}, {Name: "theta"},
		{Name: "iota"}, {Name: "kappa"}, {Name: "lambda"}, {Name: "mu"},
	},
	"empty": {},
}

// GetPreset returns a copy of the named item set.
func GetPreset(name string) ([]ItemConfig, error) {
	items, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return append([]ItemConfig(nil), items...), nil
}

func ListPresets() []string {
	names := lo.Keys(Presets)
	sort.Strings(names)
	return names
}
