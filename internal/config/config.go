// Package config holds the vents runtime settings.
//
// Defaults can be overridden with environment variables:
//   - VENTS_INPUT_DIR: directory searched for inputs given by name (default: inputs)
//   - VENTS_CELL_LIMIT: largest grid, in cells, a survey may allocate (default: 16777216)
//   - VENTS_COLOR: auto, always or never (default: auto)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultInputDir  = "inputs"
	DefaultCellLimit = 1 << 24
)

// ErrInputNotFound is returned by Resolve when no candidate path exists.
var ErrInputNotFound = errors.New("input not found")

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config contains the settings shared by every command.
type Config struct {
	// InputDir is searched for inputs that are not found as given.
	InputDir string

	// CellLimit caps grid allocation. Zero disables the cap.
	CellLimit int

	// Color selects styled or plain output.
	Color ColorMode
}

// Default returns the configuration from the environment.
func Default() (*Config, error) {
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	c := &Config{
		InputDir:  DefaultInputDir,
		CellLimit: DefaultCellLimit,
		Color:     ColorAuto,
	}
	if v := getenv("VENTS_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := getenv("VENTS_CELL_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid VENTS_CELL_LIMIT %q", v)
		}
		c.CellLimit = n
	}
	if v := getenv("VENTS_COLOR"); v != "" {
		m, err := ParseColorMode(v)
		if err != nil {
			return nil, err
		}
		c.Color = m
	}
	return c, nil
}

// ParseColorMode parses auto, always or never.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Resolve maps an input argument to a readable path. A path that exists is
// used as given; otherwise name is looked up inside InputDir.
func (c *Config) Resolve(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if c.InputDir != "" && !filepath.IsAbs(name) {
		p := filepath.Join(c.InputDir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s (also looked in %s)", ErrInputNotFound, name, c.InputDir)
}
