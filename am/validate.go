package am

import (
	"path/filepath"
	"strings"

	"github.com/teranos/papyrus-typegen/errors"
)

// Validate checks that the configuration is valid. Every failure is an
// ErrInvalidConfig.
func (c *Config) Validate() error {
	// Same input and output would overwrite the dump with declarations
	if c.Input.Path != "" && c.Output.Path != "" &&
		filepath.Clean(c.Input.Path) == filepath.Clean(c.Output.Path) {
		return errors.NewInvalidConfigError("output.path must differ from input.path (%s)", c.Input.Path)
	}

	// Empty means the built-in default; anything else is taken literally
	if c.Emit.FallbackType != "" && !isIdentifier(c.Emit.FallbackType) {
		return errors.NewInvalidConfigError("emit.fallback_type must be an identifier, got %q", c.Emit.FallbackType)
	}
	if strings.TrimSpace(c.Emit.Indent) != "" {
		return errors.NewInvalidConfigError("emit.indent must be whitespace only, got %q", c.Emit.Indent)
	}

	for i, name := range c.Emit.Ignored {
		if strings.TrimSpace(name) == "" {
			return errors.NewInvalidConfigError("emit.ignored[%d] is empty", i)
		}
	}

	seen := make(map[string]bool, len(c.Emit.Renames))
	for i, r := range c.Emit.Renames {
		if r.From == "" || r.To == "" {
			return errors.NewInvalidConfigError("emit.renames[%d] needs both from and to", i)
		}
		if seen[r.From] {
			return errors.NewInvalidConfigError("emit.renames[%d]: %q renamed twice", i, r.From)
		}
		seen[r.From] = true
	}

	for i, o := range c.Emit.ArgumentOverrides {
		if o.Function == "" || o.Type == "" {
			return errors.NewInvalidConfigError("emit.argument_overrides[%d] needs function and type", i)
		}
		if o.Position < 0 {
			return errors.NewInvalidConfigError("emit.argument_overrides[%d].position must be >= 0, got %d", i, o.Position)
		}
	}

	for i, s := range c.Emit.SynthesizedTypes {
		if s.Name == "" {
			return errors.NewInvalidConfigError("emit.synthesized_types[%d].name is empty", i)
		}
		if s.Name == s.Parent {
			return errors.NewInvalidConfigError("emit.synthesized_types[%d]: %s cannot extend itself", i, s.Name)
		}
	}

	// 0 = regenerate on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.NewInvalidConfigError("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
