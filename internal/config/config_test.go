package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/orrery/internal/orbit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := orbit.Config{MaxSize: 20, MaxRadius: 4000, MinRadius: 500}
	if diff := cmp.Diff(want, cfg.Orbit()); diff != "" {
		t.Errorf("orbit config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orrery.yaml")
	data := `
max_radius: 2000
seed: 7
items:
  - name: ceres
    scale: 0.1
    importance: 0.25
  - name: pluto
    url: https://example.com/pluto
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.MaxRadius != 2000 || cfg.MinRadius != DefaultMinRadius || cfg.Seed != 7 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cfg.Items))
	}
	if cfg.Items[0].Importance == nil || *cfg.Items[0].Importance != 0.25 {
		t.Error("importance not loaded")
	}
	if cfg.Items[1].Scale != nil || cfg.Items[1].Importance != nil {
		t.Error("absent fields must stay nil")
	}
	if cfg.Window.Width != DefaultWidth {
		t.Errorf("window width = %d, want default %d", cfg.Window.Width, DefaultWidth)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero size", "max_size: 0"},
		{"negative radius", "min_radius: -1"},
		{"bad scale", "items:\n  - name: x\n    scale: 2"},
		{"bad importance", "items:\n  - name: x\n    importance: -0.5"},
		{"bad window", "window:\n  width: 0"},
		{"negative fps", "window:\n  fps: -1"},
		{"zero fov", "camera:\n  fov: 0"},
		{"straight fov", "camera:\n  fov: 180"},
		{"zero near", "camera:\n  near: 0"},
		{"far before near", "camera:\n  near: 10\n  far: 5"},
		{"camera on target", "camera:\n  distance: 0"},
		{"degenerate camera", "camera: {distance: 0, fov: 0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_PartialCamera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("camera: {fov: 60}"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Camera.Fov != 60 {
		t.Errorf("fov = %v, want 60", cfg.Camera.Fov)
	}
	if cfg.Camera.Distance != orbit.DefaultDistance {
		t.Errorf("distance = %v, want default %v", cfg.Camera.Distance, orbit.DefaultDistance)
	}
}

func TestSaveLoadKeepsItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	cfg := DefaultConfig()
	cfg.Items, _ = GetPreset("planets")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(cfg.Items, got.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPreset(t *testing.T) {
	items, err := GetPreset("planets")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 8 || items[2].Name != "Earth" {
		t.Errorf("unexpected planets preset %+v", items)
	}

	items[0].Name = "changed"
	again, _ := GetPreset("planets")
	if again[0].Name != "Mercury" {
		t.Error("GetPreset must return a copy")
	}

	empty, err := GetPreset("empty")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty preset = %v, %v", empty, err)
	}

	if _, err := GetPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	want := []string{"empty", "links", "planets", "random"}
	if diff := cmp.Diff(want, ListPresets()); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := DefaultConfig()
		cfg.Items, _ = GetPreset(name)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestBuildItems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Items = []ItemConfig{
		{ID: "earth", Name: "Earth", Importance: f(0.2)},
		{Name: "anon"},
	}

	var hovered, clicked []string
	items := cfg.BuildItems(Actions{
		Hover: func(it *orbit.Item) { hovered = append(hovered, it.Name) },
		Click: func(it *orbit.Item) { clicked = append(clicked, it.ID) },
	})

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "earth" || *items[0].Importance != 0.2 || items[0].Scale != nil {
		t.Errorf("unexpected item %+v", items[0])
	}
	if items[1].ID == "" {
		t.Error("missing id not generated")
	}

	items[1].OnHover()
	items[0].OnClick()
	if diff := cmp.Diff([]string{"anon"}, hovered); diff != "" {
		t.Errorf("hover mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"earth"}, clicked); diff != "" {
		t.Errorf("click mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildItems_NoActions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Items = []ItemConfig{{Name: "quiet"}}

	items := cfg.BuildItems(Actions{})
	if items[0].OnHover != nil || items[0].OnClick != nil {
		t.Error("callbacks set without actions")
	}
}

func TestNewCamera(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Camera.Distance = 8000
	cfg.Camera.Fov = 60

	cam := cfg.NewCamera(2)
	if cam.Position != (orbit.Vec3{Z: 8000}) || cam.FovY != 60 || cam.Aspect != 2 {
		t.Errorf("unexpected camera %+v", cam)
	}
}
