// Package config loads the ells settings file.
package config

import (
	"os"
	"path/filepath"
)

// ColourMode decides when output is coloured.
type ColourMode string

const (
	ColourAuto   ColourMode = "auto"
	ColourAlways ColourMode = "always"
	ColourNever  ColourMode = "never"
)

// Size formats accepted by size_format.
const (
	SizeDecimal = "decimal"
	SizeBinary  = "binary"
	SizeBytes   = "bytes"
)

// Settings are the persistent defaults for a listing. Command line flags
// override them.
type Settings struct {
	Colour      ColourMode `yaml:"colour" validate:"required,oneof=auto always never"`
	ColourScale bool       `yaml:"colour_scale"`
	SizeFormat  string     `yaml:"size_format" validate:"required,oneof=decimal binary bytes"`

	Long   bool `yaml:"long"`
	All    bool `yaml:"all"`
	Git    bool `yaml:"git"`
	Header bool `yaml:"header"`
	Inode  bool `yaml:"inode"`
	Blocks bool `yaml:"blocks"`

	LogLevel string `yaml:"log_level" validate:"required,log_level"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		Colour:     ColourAuto,
		SizeFormat: SizeDecimal,
		LogLevel:   "warn",
	}
}

// DefaultPath returns the settings file location: ells/config.yaml under
// XDG_CONFIG_HOME, or under the platform's user config directory.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ells", "config.yaml"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ells", "config.yaml"), nil
}
