// Package config provides the configuration system for listedit.
//
// Settings come from two layers, higher overriding lower:
//
//  1. Built-in defaults
//  2. An optional configuration file given with -config
//
// The file format is chosen from its extension: TOML for ".toml", YAML for
// ".yaml" or ".yml". A missing file is not an error.
//
//	# listedit.toml
//	[logging]
//	level = "debug"
//
//	[render]
//	separator = " -> "
//	terminator = "NULL"
//	empty = "List is empty."
//
//	[menu]
//	show = true
//
// Typed sections give compile-time safe access:
//
//	cfg, err := config.Load(path)
//	sep := cfg.Render().Separator
package config
