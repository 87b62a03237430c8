// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

type (
	// ColorScheme selects the terminal color scheme for rendered output.
	ColorScheme string

	// Config is the application configuration.
	Config struct {
		// DefaultSeparator overrides the identifier separator assumed for
		// sources that do not declare one. Empty means '.'.
		DefaultSeparator string `mapstructure:"default_separator"`

		// Copy configures the bulk copy helper.
		Copy CopyConfig `mapstructure:"copy"`

		// UI configures terminal output.
		UI UIConfig `mapstructure:"ui"`
	}

	// CopyConfig configures the bulk copy helper.
	CopyConfig struct {
		// MaxParallel caps concurrent per-file copies; 0 means unbounded.
		MaxParallel int `mapstructure:"max_parallel"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}
)

// IsValid returns whether the ColorScheme is one of the known values.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q", ErrInvalidColorScheme, string(s))}
	}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Copy: CopyConfig{MaxParallel: 0},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
