package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
// STAGE_CONFIG overrides it (see Path).
const DefaultPath = "config/stage.yaml"

// Window holds the desktop window settings.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Camera holds the initial perspective camera.
type Camera struct {
	Position [3]float32 `yaml:"position"`
	Fov      float32    `yaml:"fov"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
}

// Lights holds the initial light intensities.
type Lights struct {
	Ambient     float32 `yaml:"ambient"`
	Directional float32 `yaml:"directional"`
}

// Prefs is everything the stage reads at startup. Persisted with the console "save" command.
type Prefs struct {
	Window      Window  `yaml:"window"`
	ClearColor  string  `yaml:"clear_color"`
	Camera      Camera  `yaml:"camera"`
	Lights      Lights  `yaml:"lights"`
	SpawnRadius float32 `yaml:"spawn_radius"`
	// Seed for cube placement; 0 seeds from the clock.
	Seed         int64  `yaml:"seed"`
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	PanelCSS     string `yaml:"panel_css,omitempty"`
}

// Default returns the stock scene: black background, camera at (0,0,5), dim ambient light.
func Default() Prefs {
	return Prefs{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "cube stage",
			TargetFPS: 60,
		},
		ClearColor: "#000000",
		Camera: Camera{
			Position: [3]float32{0, 0, 5},
			Fov:      75,
			Near:     0.1,
			Far:      1000,
		},
		Lights: Lights{
			Ambient:     0.1,
			Directional: 0.5,
		},
		SpawnRadius: 2.5,
		PanelCSS:    "assets/panel.css",
	}
}

// Path returns STAGE_CONFIG when set, otherwise DefaultPath.
func Path() string {
	if p := os.Getenv("STAGE_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads preferences from path. Keys missing from the file keep their Default() value.
// If the file is missing or invalid, Load returns Default() and does not create a file;
// the error is returned only so the caller can log it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the parent directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
