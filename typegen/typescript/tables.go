package typescript

import (
	"strings"

	"github.com/teranos/papyrus-typegen/catalogue"
)

// Rename maps one raw function name to the exact spelling to normalize from.
type Rename struct {
	From string `mapstructure:"from" toml:"from" json:"from" yaml:"from"`
	To   string `mapstructure:"to" toml:"to" json:"to" yaml:"to"`
}

// ArgumentOverride forces the declared type of one parameter. Function is
// matched case-insensitively against the renamed function name.
type ArgumentOverride struct {
	Function string `mapstructure:"function" toml:"function" json:"function" yaml:"function"`
	Position int    `mapstructure:"position" toml:"position" json:"position" yaml:"position"`
	Type     string `mapstructure:"type" toml:"type" json:"type" yaml:"type"`
}

// Known quirks of the upstream reflection data.
var (
	// DefaultIgnored holds qualified "Class.Function" names and bare class
	// names excluded from the output.
	DefaultIgnored = []string{"TESModPlatform.Add", "Math"}

	DefaultRenames = []Rename{
		{From: "getplayer", To: "getPlayer"},
	}

	// SetMotionType is reflected with an Int first parameter; the runtime
	// takes the MotionType enum declared in the preamble.
	DefaultArgumentOverrides = []ArgumentOverride{
		{Function: "setmotiontype", Position: 0, Type: "MotionType"},
	}

	// WorldSpace is referenced by the API but missing from some dumps.
	DefaultSynthesized = []catalogue.Synthesis{
		{Name: "WorldSpace", Parent: "Form"},
	}
)

const (
	// DefaultFallbackType stands in for Object references to unknown classes
	// and is the handle type taken by every static from().
	DefaultFallbackType = "Form"

	DefaultIndent = "    "
)

type argumentKey struct {
	function string
	position int
}

// lookupTables is the compiled, lookup-friendly form of Options' tables.
type lookupTables struct {
	ignored   map[string]bool
	renames   map[string]string
	arguments map[argumentKey]string
}

func compileTables(opts Options) lookupTables {
	t := lookupTables{
		ignored:   make(map[string]bool, len(opts.Ignored)),
		renames:   make(map[string]string, len(opts.Renames)),
		arguments: make(map[argumentKey]string, len(opts.ArgumentOverrides)),
	}
	for _, name := range opts.Ignored {
		t.ignored[name] = true
	}
	for _, r := range opts.Renames {
		t.renames[r.From] = r.To
	}
	for _, o := range opts.ArgumentOverrides {
		t.arguments[argumentKey{function: strings.ToLower(o.Function), position: o.Position}] = o.Type
	}
	return t
}

func (t lookupTables) rename(name string) string {
	if to, ok := t.renames[name]; ok {
		return to
	}
	return name
}

func (t lookupTables) argumentType(function string, position int) (string, bool) {
	ts, ok := t.arguments[argumentKey{function: strings.ToLower(function), position: position}]
	return ts, ok
}
