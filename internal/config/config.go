// Package config resolves the raytracer's run configuration from command
// line flags and an optional YAML file, following the teacher's flat
// Config-struct-plus-flag.*Var convention (the teacher's main.go parseFlags).
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every setting needed to render one image.
type Config struct {
	SceneType  string `yaml:"scene"`
	Width      int    `yaml:"width"`
	AspectX    int    `yaml:"aspect_x"`
	AspectY    int    `yaml:"aspect_y"`
	Samples    int    `yaml:"samples"`
	MaxDepth   int    `yaml:"max_depth"`
	MaxPasses  int    `yaml:"max_passes"`
	NumWorkers int    `yaml:"workers"`
	LogLevel   string `yaml:"log_level"`
	OutputDir  string `yaml:"output_dir"`
	ConfigFile string `yaml:"-"`
	Help       bool   `yaml:"-"`
}

// Default returns the built-in baseline, overridden first by any YAML file
// named by -config and finally by explicit command-line flags (flags win).
func Default() Config {
	return Config{
		SceneType:  "default",
		Width:      400,
		AspectX:    16,
		AspectY:    9,
		Samples:    200,
		MaxDepth:   50,
		MaxPasses:  10,
		NumWorkers: 0,
		LogLevel:   "info",
		OutputDir:  "output",
	}
}

// Parse builds a Config from args: Default(), then the YAML file named by
// -config/--config (if any), then flags as parsed by a standard FlagSet so
// explicit command-line values always win.
func Parse(args []string) (Config, error) {
	cfg := Default()

	if path := findConfigFlag(args); path != "" {
		if err := applyYAML(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Path to a YAML config file")
	fs.StringVar(&cfg.SceneType, "scene", cfg.SceneType, "Scene name (see -help for the registry)")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Output image width in pixels")
	fs.IntVar(&cfg.AspectX, "aspect-x", cfg.AspectX, "Aspect ratio numerator")
	fs.IntVar(&cfg.AspectY, "aspect-y", cfg.AspectY, "Aspect ratio denominator")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Target samples per pixel")
	fs.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "Maximum path recursion depth")
	fs.IntVar(&cfg.MaxPasses, "max-passes", cfg.MaxPasses, "Maximum number of progressive passes")
	fs.IntVar(&cfg.NumWorkers, "workers", cfg.NumWorkers, "Number of parallel workers (0 = auto-detect)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory PNGs are written to")
	fs.BoolVar(&cfg.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AspectRatio returns AspectX/AspectY as a float, defaulting to 16:9 if
// either component is non-positive.
func (c Config) AspectRatio() float64 {
	if c.AspectX <= 0 || c.AspectY <= 0 {
		return 16.0 / 9.0
	}
	return float64(c.AspectX) / float64(c.AspectY)
}

func applyYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return nil
}

// findConfigFlag scans args for -config/--config before the main FlagSet
// runs, since the YAML file's values must act as new defaults that
// explicit flags can still override.
func findConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}
