// Package typegen holds the language-agnostic pieces of declaration
// generation: the run result, the emission set that orders classes, and the
// up-to-date check used by CI.
package typegen

// Result holds one complete generated declaration document.
type Result struct {
	// Output is the full document text
	Output string

	// Classes lists emitted class names, parents before children
	Classes []string

	// Skipped lists qualified "Class.Function" names dropped by the ignore list
	Skipped []string

	// Synthesized lists stand-in classes created during resolution
	Synthesized []string
}

// SourceLinePrefix starts the metadata line naming the dump a document was
// generated from. CompareContent ignores these lines.
const SourceLinePrefix = "// Source:"
