// Package config loads keyboard layouts and start positions from YAML.
//
// Example:
//
//	layout:
//	  - "ABC"
//	  - "DEF"
//	start: {x: 1, y: 0}
//
// layout_file may point to a plain-text layout instead, relative to the
// config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"keyboardmadness/internal/interpreter"
)

type Config struct {
	Layout     []string `yaml:"layout,omitempty"`
	LayoutFile string   `yaml:"layout_file,omitempty"`
	Start      Start    `yaml:"start"`
}

type Start struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// file mirrors Config with optional fields so unset keys keep defaults.
type file struct {
	Layout     []string `yaml:"layout"`
	LayoutFile string   `yaml:"layout_file"`
	Start      *Start   `yaml:"start"`
}

// Default is the reference keyboard with the cursor on G.
func Default() *Config {
	return &Config{
		Layout: interpreter.Keys.Rows(),
		Start:  Start{X: 4, Y: 2},
	}
}

// Load reads path and overlays it onto Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.LayoutFile != "" && !filepath.IsAbs(cfg.LayoutFile) {
		cfg.LayoutFile = filepath.Join(filepath.Dir(path), cfg.LayoutFile)
	}
	return cfg, nil
}

// Parse decodes YAML onto Default. Relative layout_file paths are left as is.
func Parse(data []byte) (*Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	cfg := Default()
	if f.Layout != nil || f.LayoutFile != "" {
		cfg.Layout = f.Layout
		cfg.LayoutFile = f.LayoutFile
	}
	if f.Start != nil {
		cfg.Start = *f.Start
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Layout) > 0 && c.LayoutFile != "" {
		return errors.New("layout and layout_file are mutually exclusive")
	}
	if len(c.Layout) == 0 && c.LayoutFile == "" {
		return errors.New("no layout")
	}
	return nil
}

// Grid builds the configured layout.
func (c *Config) Grid() (*interpreter.Grid, error) {
	if c.LayoutFile != "" {
		return interpreter.LoadGrid(c.LayoutFile)
	}
	g, err := interpreter.NewGrid(c.Layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return g, nil
}

func (c *Config) StartPosition() interpreter.Position {
	return interpreter.Pos(c.Start.X, c.Start.Y)
}
