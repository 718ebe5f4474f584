// Package am loads and persists the typegen configuration.
//
// Sources are layered, later ones winning: built-in defaults, the user
// config, the nearest project typegen.toml (searched upward from the working
// directory) and TYPEGEN_* environment variables.
package am

import (
	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/typegen/typescript"
)

// Config represents the typegen configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input" toml:"input" json:"input" yaml:"input"`
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Emit   EmitConfig   `mapstructure:"emit" toml:"emit" json:"emit" yaml:"emit"`
	Log    LogConfig    `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Watch  WatchConfig  `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// InputConfig locates the reflected API dump
type InputConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" yaml:"path"` // Dump file used when no argument is given
}

// OutputConfig controls where declarations are written
type OutputConfig struct {
	Path     string `mapstructure:"path" toml:"path" json:"path" yaml:"path"`                 // Empty = stdout
	Preamble bool   `mapstructure:"preamble" toml:"preamble" json:"preamble" yaml:"preamble"` // Prepend the fixed declarations (default: true)
}

// EmitConfig holds the emitter tables. Renames and overrides are lists of
// tables so that mixed-case names survive the config layer.
type EmitConfig struct {
	FallbackType             string                        `mapstructure:"fallback_type" toml:"fallback_type" json:"fallback_type" yaml:"fallback_type"`
	Indent                   string                        `mapstructure:"indent" toml:"indent" json:"indent" yaml:"indent"`
	Ignored                  []string                      `mapstructure:"ignored" toml:"ignored" json:"ignored" yaml:"ignored"`
	Renames                  []typescript.Rename           `mapstructure:"renames" toml:"renames" json:"renames" yaml:"renames"`
	ArgumentOverrides        []typescript.ArgumentOverride `mapstructure:"argument_overrides" toml:"argument_overrides" json:"argument_overrides" yaml:"argument_overrides"`
	SynthesizedTypes         []SynthesizedType             `mapstructure:"synthesized_types" toml:"synthesized_types" json:"synthesized_types" yaml:"synthesized_types"`
	SynthesizeMissingParents bool                          `mapstructure:"synthesize_missing_parents" toml:"synthesize_missing_parents" json:"synthesize_missing_parents" yaml:"synthesize_missing_parents"`
}

// SynthesizedType is a class stood in when the dump lacks it
type SynthesizedType struct {
	Name   string `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	Parent string `mapstructure:"parent" toml:"parent" json:"parent" yaml:"parent"`
}

// LogConfig configures log output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"` // Structured JSON logs on stderr
}

// WatchConfig configures --watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"` // Quiet period before regenerating
}

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// ProjectConfigName is the file searched for from the working directory up
const ProjectConfigName = "typegen.toml"

// EmitOptions converts the emit and output sections into emitter options.
// sourceName is written as the document's "// Source:" line when non-empty.
func (c *Config) EmitOptions(sourceName string) typescript.Options {
	synthesized := make([]catalogue.Synthesis, 0, len(c.Emit.SynthesizedTypes))
	for _, s := range c.Emit.SynthesizedTypes {
		synthesized = append(synthesized, catalogue.Synthesis{Name: s.Name, Parent: s.Parent})
	}

	return typescript.Options{
		Ignored:                  append([]string(nil), c.Emit.Ignored...),
		Renames:                  append([]typescript.Rename(nil), c.Emit.Renames...),
		ArgumentOverrides:        append([]typescript.ArgumentOverride(nil), c.Emit.ArgumentOverrides...),
		Synthesized:              synthesized,
		SynthesizeMissingParents: c.Emit.SynthesizeMissingParents,
		FallbackType:             c.Emit.FallbackType,
		Indent:                   c.Emit.Indent,
		Preamble:                 c.Output.Preamble,
		SourceName:               sourceName,
	}
}
