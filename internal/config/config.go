// Package config describes a sculpt job for the command line tool: the
// terrain to build, the camera the stroke was drawn through, the stroke
// itself and the outputs to produce.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings of a sculpt job.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Strokes []StrokeSpec  `yaml:"strokes"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig sizes the terrain grid.
type TerrainConfig struct {
	Size     float64 `yaml:"size"`
	Segments int     `yaml:"segments"`
}

// CameraConfig places the viewport camera the strokes are drawn through.
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`
	Center [3]float64 `yaml:"center"`
	FOV    float64    `yaml:"fov"`
	Near   float64    `yaml:"near"`
	Far    float64    `yaml:"far"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
}

// StrokeSpec is one drawn stroke as screen pixel coordinates, applied in
// file order.
type StrokeSpec struct {
	Points [][2]float64 `yaml:"points"`
}

// OutputConfig selects the artifacts to write. Empty paths are skipped.
type OutputConfig struct {
	GLB     string `yaml:"glb"`
	STL     string `yaml:"stl"`
	Preview string `yaml:"preview"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{Size: 100, Segments: 64},
		Camera: CameraConfig{
			Eye:    [3]float64{0, 60, 120},
			Center: [3]float64{0, 0, 0},
			FOV:    45,
			Near:   0.1,
			Far:    1000,
			Width:  1280,
			Height: 720,
		},
		Output:  OutputConfig{GLB: "terrain.glb"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate reports the first problem that would make the job unrunnable.
func (c *Config) Validate() error {
	if c.Terrain.Size <= 0 {
		return fmt.Errorf("terrain size %g: must be positive", c.Terrain.Size)
	}
	if c.Terrain.Segments < 1 {
		return errors.New("terrain segments: must be at least 1")
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		return errors.New("camera viewport: width and height must be positive")
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.New("camera clip planes: need 0 < near < far")
	}
	for i, s := range c.Strokes {
		if len(s.Points) < 2 {
			return fmt.Errorf("stroke %d: needs at least 2 points", i)
		}
	}
	return nil
}
