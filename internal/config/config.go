package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDollyMotionFactor matches the controller's built-in factor.
const DefaultDollyMotionFactor = 2.0

// Config holds the interaction tuning, input paths and snapshot settings.
type Config struct {
	// Interaction
	DollyMotionFactor       float64 `json:"dolly_motion_factor"`
	AutoAdjustClippingRange *bool   `json:"auto_adjust_clipping_range"`
	LightFollowCamera       *bool   `json:"light_follow_camera"`

	// Paths
	BaseDir   string `json:"base_dir"`
	SceneFile string `json:"scene_file"`
	TraceFile string `json:"trace_file"`
	OutputDir string `json:"output_dir"`

	// Snapshot settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	LogLevel string `json:"log_level"`
	Metrics  bool   `json:"metrics"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// Paths in a config file are relative to the file, not the cwd
	c.SceneFile = c.resolvePath(c.SceneFile)
	c.TraceFile = c.resolvePath(c.TraceFile)
	c.OutputDir = c.resolvePath(c.OutputDir)

	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.TraceFile != "" {
		c.TraceFile = flags.TraceFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Metrics {
		c.Metrics = true
	}

	if c.DollyMotionFactor <= 0 {
		c.DollyMotionFactor = DefaultDollyMotionFactor
	}
	if c.AutoAdjustClippingRange == nil {
		c.AutoAdjustClippingRange = boolPtr(true)
	}
	if c.LightFollowCamera == nil {
		c.LightFollowCamera = boolPtr(true)
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Flags holds CLI flag values that override config file settings.
// Flag paths are used as given.
type Flags struct {
	SceneFile  string
	TraceFile  string
	OutputDir  string
	RenderSize int
	Workers    int
	LogLevel   string
	Metrics    bool
}

func (c *Config) resolvePath(p string) string {
	if p == "" || c.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

func boolPtr(b bool) *bool { return &b }
