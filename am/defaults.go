package am

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/teranos/papyrus-typegen/typegen/typescript"
)

// DefaultWatchDebounceMS is the quiet period --watch waits for before regenerating
const DefaultWatchDebounceMS = 300

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Input / output
	v.SetDefault("input.path", "")
	v.SetDefault("output.path", "") // stdout
	v.SetDefault("output.preamble", true)

	// Emitter tables (known quirks of the reflected API)
	v.SetDefault("emit.fallback_type", typescript.DefaultFallbackType)
	v.SetDefault("emit.indent", typescript.DefaultIndent)
	v.SetDefault("emit.ignored", append([]string(nil), typescript.DefaultIgnored...))
	v.SetDefault("emit.renames", renameTables(typescript.DefaultRenames))
	v.SetDefault("emit.argument_overrides", overrideTables(typescript.DefaultArgumentOverrides))
	v.SetDefault("emit.synthesized_types", synthesisTables())
	v.SetDefault("emit.synthesize_missing_parents", true)

	v.SetDefault("log.json", false)
	v.SetDefault("watch.debounce_ms", DefaultWatchDebounceMS)
}

// The list defaults are kept in the same shape a TOML array of tables
// decodes to, so file values and defaults unmarshal identically.

func renameTables(renames []typescript.Rename) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(renames))
	for _, r := range renames {
		out = append(out, map[string]interface{}{"from": r.From, "to": r.To})
	}
	return out
}

func overrideTables(overrides []typescript.ArgumentOverride) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, map[string]interface{}{"function": o.Function, "position": o.Position, "type": o.Type})
	}
	return out
}

func synthesisTables() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(typescript.DefaultSynthesized))
	for _, s := range typescript.DefaultSynthesized {
		out = append(out, map[string]interface{}{"name": s.Name, "parent": s.Parent})
	}
	return out
}

// Default returns the configuration built from defaults alone
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		panic(fmt.Sprintf("am: defaults do not decode: %v", err))
	}
	return cfg
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Input: %q, Output: %q, Preamble: %t, Ignored: %d, Renames: %d, Overrides: %d}",
		c.Input.Path, c.Output.Path, c.Output.Preamble,
		len(c.Emit.Ignored), len(c.Emit.Renames), len(c.Emit.ArgumentOverrides))
}
