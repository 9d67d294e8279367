// Package config handles shadowcaster configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Lights  []LightConfig  `yaml:"lights"`
	Objects []ObjectConfig `yaml:"objects"`
	Shadow  ShadowConfig   `yaml:"shadow"`
	Math    MathConfig     `yaml:"math"`
	Window  WindowConfig   `yaml:"window"`
	Logging LoggingConfig  `yaml:"logging"`
}

// LightConfig describes one directional light.
type LightConfig struct {
	Name       string     `yaml:"name"`
	Position   [3]float32 `yaml:"position"`
	FocalPoint [3]float32 `yaml:"focal_point"`
	// Up defaults to +Y when omitted.
	Up *[3]float32 `yaml:"up,omitempty"`
	// Sun, when its distance is positive, replaces Position and Up.
	Sun          SunConfig         `yaml:"sun"`
	Intensity    float32           `yaml:"intensity"`
	Color        [3]float32        `yaml:"color"`
	HasShadowMap bool              `yaml:"has_shadow_map"`
	Projection   *ProjectionConfig `yaml:"projection,omitempty"`
	// FitToObjects sizes the shadow volume to the configured objects.
	FitToObjects bool `yaml:"fit_to_objects,omitempty"`
}

// SunConfig places a light by sun angles around its focal point.
type SunConfig struct {
	Longitude float32 `yaml:"longitude"`
	Latitude  float32 `yaml:"latitude"`
	Distance  float32 `yaml:"distance"`
}

// ProjectionConfig overrides the orthographic shadow volume of a light.
type ProjectionConfig struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

// emptyAxis names the first axis whose bounds coincide, or returns "".
// An all-zero projection means the default volume and is not checked here.
func (p ProjectionConfig) emptyAxis() string {
	switch {
	case p.Left == p.Right:
		return "horizontal"
	case p.Bottom == p.Top:
		return "vertical"
	case p.Near == p.Far:
		return "depth"
	}
	return ""
}

// ObjectConfig places one shadow-casting object.
type ObjectConfig struct {
	Name        string     `yaml:"name"`
	Translation [3]float32 `yaml:"translation"`
	// Scale defaults to (1, 1, 1) when omitted.
	Scale *[3]float32 `yaml:"scale,omitempty"`
}

// ShadowConfig holds shadow pass settings.
type ShadowConfig struct {
	Resolution int32 `yaml:"resolution"`
	// Strict skips degenerate lights and objects instead of rendering them.
	Strict bool `yaml:"strict"`
	Frames int  `yaml:"frames"`
	// DumpDir, when set, receives one BMP per GPU shadow map after the last frame.
	DumpDir string `yaml:"dump_dir,omitempty"`
}

// MathConfig selects the matrix backend ("std" or "mgl").
type MathConfig struct {
	Backend string `yaml:"backend"`
}

// WindowConfig holds settings for the GL context window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Hidden bool   `yaml:"hidden"`
	VSync  bool   `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Lights: []LightConfig{
			{
				Name:         "sun",
				Position:     [3]float32{0, 0, 10},
				FocalPoint:   [3]float32{0, 0, 0},
				Intensity:    1.0,
				Color:        [3]float32{1, 1, 1},
				HasShadowMap: true,
			},
		},
		Objects: []ObjectConfig{
			{Name: "cube"},
		},
		Shadow: ShadowConfig{
			Resolution: 2048,
			Strict:     false,
			Frames:     1,
		},
		Math: MathConfig{
			Backend: "std",
		},
		Window: WindowConfig{
			Title:  "shadowcaster",
			Width:  640,
			Height: 480,
			Hidden: true,
			VSync:  false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// UpOrDefault returns the configured up vector, or +Y.
func (l LightConfig) UpOrDefault() [3]float32 {
	if l.Up == nil {
		return [3]float32{0, 1, 0}
	}
	return *l.Up
}

// ScaleOrDefault returns the configured scale, or (1, 1, 1).
func (o ObjectConfig) ScaleOrDefault() [3]float32 {
	if o.Scale == nil {
		return [3]float32{1, 1, 1}
	}
	return *o.Scale
}

// Validate checks structural constraints that do not depend on geometry.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Lights))
	for i, l := range c.Lights {
		if l.Name == "" {
			return fmt.Errorf("%w: light %d has no name", ErrInvalid, i)
		}
		if seen[l.Name] {
			return fmt.Errorf("%w: duplicate light name %q", ErrInvalid, l.Name)
		}
		seen[l.Name] = true
		if l.Sun.Distance < 0 {
			return fmt.Errorf("%w: light %q: negative sun distance", ErrInvalid, l.Name)
		}
		if l.FitToObjects && l.Projection != nil {
			return fmt.Errorf("%w: light %q: projection and fit_to_objects are exclusive", ErrInvalid, l.Name)
		}
		if p := l.Projection; p != nil && *p != (ProjectionConfig{}) {
			if axis := p.emptyAxis(); axis != "" {
				return fmt.Errorf("%w: light %q: projection has zero %s extent", ErrInvalid, l.Name, axis)
			}
		}
	}
	if c.Shadow.Resolution < 0 {
		return fmt.Errorf("%w: negative shadow resolution %d", ErrInvalid, c.Shadow.Resolution)
	}
	if c.Shadow.Frames < 0 {
		return fmt.Errorf("%w: negative frame count %d", ErrInvalid, c.Shadow.Frames)
	}
	return nil
}
