package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
icon:
  source: "assets/seedoc.ico"
  output_ico: "build/seedoc_enlarged.ico"
  output_preview: "build/seedoc_enlarged.png"
  crop_fraction: 0.8
  sizes: [16, 32, 256]
  frame: "first"

favicon:
  source: "assets/seedoc.ico"
  output: "build/favicon.png"

html:
  path: "public/index.html"
  href: "favicon.png"

images:
  min_width: 256
  min_height: 256
  icons:
    apple_touch_icon_sizes: [180, 152]
    android_icon_sizes: [192, 512]
    output_dir: "build/icons"

site:
  static_dir: "site/static"

watch:
  enabled: true
  debounce_ms: 250
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	// Load config
	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Validate fields
	if cfg.Icon.Source != "assets/seedoc.ico" {
		t.Errorf("Expected source 'assets/seedoc.ico', got '%s'", cfg.Icon.Source)
	}

	if cfg.Icon.CropFraction != 0.8 {
		t.Errorf("Expected crop_fraction 0.8, got %v", cfg.Icon.CropFraction)
	}

	if len(cfg.Icon.Sizes) != 3 {
		t.Errorf("Expected 3 sizes, got %d", len(cfg.Icon.Sizes))
	}

	if cfg.Icon.Frame != FrameFirst {
		t.Errorf("Expected frame 'first', got '%s'", cfg.Icon.Frame)
	}

	// Unset fields keep their defaults
	if cfg.Favicon.Frame != FrameLargest {
		t.Errorf("Expected default favicon frame 'largest', got '%s'", cfg.Favicon.Frame)
	}

	if cfg.HTML.Type != "image/png" {
		t.Errorf("Expected default html type 'image/png', got '%s'", cfg.HTML.Type)
	}

	if cfg.IconSetDir() != "build/icons" {
		t.Errorf("Expected icon set dir 'build/icons', got '%s'", cfg.IconSetDir())
	}

	if !cfg.Watch.Enabled || cfg.Watch.DebounceMS != 250 {
		t.Errorf("Expected watch enabled with 250ms debounce, got %+v", cfg.Watch)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	if cfg.Icon.CropFraction != 0.65 {
		t.Errorf("Expected default crop_fraction 0.65, got %v", cfg.Icon.CropFraction)
	}

	want := []int{16, 32, 48, 64, 128, 256}
	if len(cfg.Icon.Sizes) != len(want) {
		t.Fatalf("Expected %d default sizes, got %d", len(want), len(cfg.Icon.Sizes))
	}
	for i, size := range want {
		if cfg.Icon.Sizes[i] != size {
			t.Errorf("Expected size %d at index %d, got %d", size, i, cfg.Icon.Sizes[i])
		}
	}

	if cfg.IconSetDir() != "." {
		t.Errorf("Expected icon set dir '.', got '%s'", cfg.IconSetDir())
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "full crop fraction",
			mutate:  func(c *Config) { c.Icon.CropFraction = 1.0 },
			wantErr: false,
		},
		{
			name:    "missing source",
			mutate:  func(c *Config) { c.Icon.Source = "" },
			wantErr: true,
		},
		{
			name:    "zero crop fraction",
			mutate:  func(c *Config) { c.Icon.CropFraction = 0 },
			wantErr: true,
		},
		{
			name:    "crop fraction above one",
			mutate:  func(c *Config) { c.Icon.CropFraction = 1.2 },
			wantErr: true,
		},
		{
			name:    "empty sizes",
			mutate:  func(c *Config) { c.Icon.Sizes = nil },
			wantErr: true,
		},
		{
			name:    "negative size",
			mutate:  func(c *Config) { c.Icon.Sizes = []int{16, -32} },
			wantErr: true,
		},
		{
			name:    "unknown frame mode",
			mutate:  func(c *Config) { c.Favicon.Frame = "smallest" },
			wantErr: true,
		},
		{
			name:    "missing html path",
			mutate:  func(c *Config) { c.HTML.Path = "" },
			wantErr: true,
		},
		{
			name:    "zero android size",
			mutate:  func(c *Config) { c.Images.Icons.AndroidIconSizes = []int{0} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
