package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigFormat is returned for config files that are neither
// YAML nor TOML.
var ErrUnknownConfigFormat = errors.New("swrdemo: unknown config format")

// Config describes one demo run.
type Config struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Frames int    `yaml:"frames" toml:"frames"`
	Output string `yaml:"output" toml:"output"`

	// FrameTime is the scene time between frames, in seconds.
	FrameTime float32 `yaml:"frame_time" toml:"frame_time"`

	// Spin is the cube's turntable speed in radians per second.
	Spin float32 `yaml:"spin" toml:"spin"`

	ShadowMapSize int `yaml:"shadow_map_size" toml:"shadow_map_size"`

	// Texture is an optional diffuse map for the cube.
	Texture string `yaml:"texture" toml:"texture"`

	// SRGB encodes the output with the sRGB transfer function.
	SRGB bool `yaml:"srgb" toml:"srgb"`

	Camera CameraConfig `yaml:"camera" toml:"camera"`
	Light  LightConfig  `yaml:"light" toml:"light"`
}

// CameraConfig places the camera. FovY is in degrees.
type CameraConfig struct {
	Position [3]float32 `yaml:"position" toml:"position"`
	Target   [3]float32 `yaml:"target" toml:"target"`
	FovY     float32    `yaml:"fov_y" toml:"fov_y"`
}

// LightConfig describes the directional light.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction" toml:"direction"`
	Ambient   float32    `yaml:"ambient" toml:"ambient"`
	Punctual  float32    `yaml:"punctual" toml:"punctual"`
	Extent    float32    `yaml:"extent" toml:"extent"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:         640,
		Height:        480,
		Frames:        1,
		Output:        "swrdemo.png",
		FrameTime:     1.0 / 30,
		Spin:          0.8,
		ShadowMapSize: 512,
		SRGB:          true,
		Camera: CameraConfig{
			Position: [3]float32{0, 2.5, 4.5},
			Target:   [3]float32{0, 0.5, 0},
			FovY:     50,
		},
		Light: LightConfig{
			Direction: [3]float32{-1, -2, -1},
			Ambient:   0.2,
			Punctual:  0.8,
			Extent:    5,
		},
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file on top of
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("swrdemo: read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("swrdemo: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("swrdemo: invalid size %dx%d", c.Width, c.Height)
	case c.Frames <= 0:
		return fmt.Errorf("swrdemo: frames must be positive, got %d", c.Frames)
	case c.Output == "":
		return errors.New("swrdemo: empty output path")
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return fmt.Errorf("swrdemo: fov_y %v out of range (0, 180)", c.Camera.FovY)
	case c.Light.Direction == [3]float32{}:
		return errors.New("swrdemo: zero light direction")
	}
	return nil
}

// FramePath returns the output path of frame i. Single-frame runs write
// Output as is; otherwise the frame number is appended to the base name.
func (c *Config) FramePath(i int) string {
	if c.Frames == 1 {
		return c.Output
	}
	ext := filepath.Ext(c.Output)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(c.Output, ext), i, ext)
}
