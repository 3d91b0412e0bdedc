package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Frame selection modes for multi-frame icon containers
const (
	FrameLargest = "largest"
	FrameFirst   = "first"
)

// Config represents the application configuration
type Config struct {
	Icon    IconConfig    `yaml:"icon"`
	Favicon FaviconConfig `yaml:"favicon"`
	HTML    HTMLConfig    `yaml:"html"`
	Images  ImagesConfig  `yaml:"images"`
	Site    SiteConfig    `yaml:"site"`
	Watch   WatchConfig   `yaml:"watch"`
}

// IconConfig drives the icon enlarger
type IconConfig struct {
	Source        string  `yaml:"source"`
	OutputICO     string  `yaml:"output_ico"`
	OutputPreview string  `yaml:"output_preview"`
	CropFraction  float64 `yaml:"crop_fraction"`
	Sizes         []int   `yaml:"sizes"`
	Frame         string  `yaml:"frame"`
}

// FaviconConfig drives the ICO to PNG conversion
type FaviconConfig struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Frame  string `yaml:"frame"`
}

type HTMLConfig struct {
	Path string `yaml:"path"`
	Href string `yaml:"href"`
	Type string `yaml:"type"`
}

type ImagesConfig struct {
	MinWidth  int         `yaml:"min_width"`
	MinHeight int         `yaml:"min_height"`
	Icons     IconsConfig `yaml:"icons"`
}

type IconsConfig struct {
	AppleTouchIconSizes []int  `yaml:"apple_touch_icon_sizes"`
	AndroidIconSizes    []int  `yaml:"android_icon_sizes"`
	OutputDir           string `yaml:"output_dir"`
}

type SiteConfig struct {
	StaticDir string `yaml:"static_dir"`
}

type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMS int  `yaml:"debounce_ms"`
}

// Default returns the configuration matching the original asset scripts
func Default() *Config {
	return &Config{
		Icon: IconConfig{
			Source:        "seedoc.ico",
			OutputICO:     "seedoc_enlarged.ico",
			OutputPreview: "seedoc_enlarged.png",
			CropFraction:  0.65,
			Sizes:         []int{16, 32, 48, 64, 128, 256},
			Frame:         FrameLargest,
		},
		Favicon: FaviconConfig{
			Source: "seedoc.ico",
			Output: "favicon.png",
			Frame:  FrameLargest,
		},
		HTML: HTMLConfig{
			Path: "index.html",
			Href: "favicon.png",
			Type: "image/png",
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// Load reads and parses the configuration file on top of Default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Icon.Source == "" {
		return fmt.Errorf("icon.source is required")
	}
	if c.Icon.OutputICO == "" || c.Icon.OutputPreview == "" {
		return fmt.Errorf("icon.output_ico and icon.output_preview are required")
	}
	if c.Icon.CropFraction <= 0 || c.Icon.CropFraction > 1 {
		return fmt.Errorf("icon.crop_fraction must be in (0, 1], got %v", c.Icon.CropFraction)
	}
	if len(c.Icon.Sizes) == 0 {
		return fmt.Errorf("icon.sizes must not be empty")
	}
	for _, size := range c.Icon.Sizes {
		if size <= 0 {
			return fmt.Errorf("icon.sizes must be positive, got %d", size)
		}
	}
	if err := validateFrame("icon.frame", c.Icon.Frame); err != nil {
		return err
	}

	if c.Favicon.Source == "" || c.Favicon.Output == "" {
		return fmt.Errorf("favicon.source and favicon.output are required")
	}
	if err := validateFrame("favicon.frame", c.Favicon.Frame); err != nil {
		return err
	}

	if c.HTML.Path == "" || c.HTML.Href == "" {
		return fmt.Errorf("html.path and html.href are required")
	}

	for _, sizes := range [][]int{c.Images.Icons.AppleTouchIconSizes, c.Images.Icons.AndroidIconSizes} {
		for _, size := range sizes {
			if size <= 0 {
				return fmt.Errorf("images.icons sizes must be positive, got %d", size)
			}
		}
	}

	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative")
	}
	return nil
}

func validateFrame(field, mode string) error {
	switch mode {
	case FrameLargest, FrameFirst:
		return nil
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", field, FrameLargest, FrameFirst, mode)
	}
}

// IconSetDir returns the directory for generated touch/android icons.
// Defaults to the directory of the enlarged ICO.
func (c *Config) IconSetDir() string {
	if c.Images.Icons.OutputDir != "" {
		return c.Images.Icons.OutputDir
	}
	return filepath.Dir(c.Icon.OutputICO)
}
