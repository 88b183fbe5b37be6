package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/listedit/internal/config/loader"
)

// Config holds merged settings from all layers.
type Config struct {
	data   map[string]any
	source string

	// configErrors records settings whose value had the wrong type.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*options)

type options struct {
	fs loader.FileSystem
}

// WithFileSystem sets the file system used to read the config file.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// Default returns a Config holding only the built-in defaults.
func Default() *Config {
	return &Config{
		data:         defaults(),
		configErrors: make(map[string]error),
	}
}

// Load builds a Config from the defaults and the file at path.
// An empty path or a missing file yields the defaults.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS()}
	for _, opt := range opts {
		opt(&o)
	}

	c := Default()
	if path == "" {
		return c, nil
	}

	l, err := loader.ForPath(o.fs, path)
	if err != nil {
		return nil, err
	}
	fileData, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if fileData != nil {
		c.data = loader.DeepMerge(c.data, fileData)
		c.source = path
	}
	c.validate()
	return c, nil
}

// validate reads every section once so ConfigErrors is complete right after
// Load, before any caller has asked for a particular section.
func (c *Config) validate() {
	c.Logging()
	c.Render()
	c.Menu()
}

// Source returns the path the file layer was loaded from, or "" when only
// defaults are in effect.
func (c *Config) Source() string {
	return c.source
}

// Get returns the raw value at a dot-separated path.
func (c *Config) Get(path string) (any, error) {
	var current any = c.data
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrSettingNotFound)
		}
		current, ok = m[part]
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrSettingNotFound)
		}
	}
	return current, nil
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	v, err := c.Get(path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %s: %w", path, typeName(v), ErrTypeMismatch)
	}
	return s, nil
}

// GetBool returns the bool at path.
func (c *Config) GetBool(path string) (bool, error) {
	v, err := c.Get(path)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected bool, got %s: %w", path, typeName(v), ErrTypeMismatch)
	}
	return b, nil
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	s, err := c.GetString(path)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return s
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	b, err := c.GetBool(path)
	if err != nil {
		c.recordConfigError(path, err)
		return defaultValue
	}
	return b
}

// recordConfigError remembers type mismatches; missing settings fall back
// to defaults silently.
func (c *Config) recordConfigError(path string, err error) {
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns the type errors seen while reading settings.
func (c *Config) ConfigErrors() map[string]error {
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return "unknown"
	}
}
