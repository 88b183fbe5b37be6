package config

import (
	"github.com/dshills/listedit/internal/engine/list"
)

// defaults returns the built-in settings layer.
func defaults() map[string]any {
	return map[string]any{
		"logging": map[string]any{
			"level":  "info",
			"prefix": "listedit",
		},
		"render": map[string]any{
			"separator":  list.DefaultSeparator,
			"terminator": list.DefaultTerminator,
			"empty":      list.DefaultEmptyText,
		},
		"menu": map[string]any{
			"show": true,
		},
	}
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the logging verbosity level ("debug", "info", "warn", "error").
	Level string

	// Prefix is prepended to every log line.
	Prefix string
}

// RenderConfig contains list rendering settings.
type RenderConfig struct {
	Separator  string
	Terminator string
	Empty      string
}

// MenuConfig contains interactive menu settings.
type MenuConfig struct {
	// Show prints the menu before every prompt.
	Show bool
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level:  c.getStringOr("logging.level", "info"),
		Prefix: c.getStringOr("logging.prefix", "listedit"),
	}
}

// Render returns type-safe access to render settings.
func (c *Config) Render() RenderConfig {
	return RenderConfig{
		Separator:  c.getStringOr("render.separator", list.DefaultSeparator),
		Terminator: c.getStringOr("render.terminator", list.DefaultTerminator),
		Empty:      c.getStringOr("render.empty", list.DefaultEmptyText),
	}
}

// RenderOptions converts the render settings for the list package.
func (r RenderConfig) RenderOptions() list.RenderOptions {
	return list.RenderOptions{
		Separator:  r.Separator,
		Terminator: r.Terminator,
		EmptyText:  r.Empty,
	}
}

// Menu returns type-safe access to menu settings.
func (c *Config) Menu() MenuConfig {
	return MenuConfig{
		Show: c.getBoolOr("menu.show", true),
	}
}
