// Package typescript emits TypeScript declarations (.d.ts) for a reflected
// class catalogue.
//
// Classes are emitted in catalogue order, except that a class's ancestors
// are always emitted first. Each class appears once:
//
//	// Based on Actor.pex
//	export declare class Actor extends ObjectReference {
//	    static from(form: Form): Actor;
//	    isDead(): boolean;
//	    static getPlayer(): Actor;
//	}
package typescript

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
	"github.com/teranos/papyrus-typegen/typegen"
	"github.com/teranos/papyrus-typegen/typegen/util"
)

// Options configures one generation run.
type Options struct {
	Ignored           []string
	Renames           []Rename
	ArgumentOverrides []ArgumentOverride

	// Synthesized stand-ins and missing-parent handling, see catalogue.Resolve
	Synthesized              []catalogue.Synthesis
	SynthesizeMissingParents bool

	FallbackType string
	Indent       string

	// Preamble includes the fixed declarations ahead of the classes
	Preamble bool
	// SourceName, when set, is written as a "// Source:" line at the top
	SourceName string
}

// DefaultOptions returns the options matching the upstream API quirks.
func DefaultOptions() Options {
	return Options{
		Ignored:                  append([]string(nil), DefaultIgnored...),
		Renames:                  append([]Rename(nil), DefaultRenames...),
		ArgumentOverrides:        append([]ArgumentOverride(nil), DefaultArgumentOverrides...),
		Synthesized:              append([]catalogue.Synthesis(nil), DefaultSynthesized...),
		SynthesizeMissingParents: true,
		FallbackType:             DefaultFallbackType,
		Indent:                   DefaultIndent,
		Preamble:                 true,
	}
}

// Emitter renders one declaration document. Each call to Emit starts from an
// empty emission set.
type Emitter struct {
	cat    *catalogue.Catalogue
	opts   Options
	tables lookupTables
	mapper *Mapper
	log    *zap.SugaredLogger

	sb      strings.Builder
	emitted *typegen.EmissionSet
	skipped []string
}

// NewEmitter creates an emitter for cat.
func NewEmitter(cat *catalogue.Catalogue, opts Options) *Emitter {
	if opts.FallbackType == "" {
		opts.FallbackType = DefaultFallbackType
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Emitter{
		cat:    cat,
		opts:   opts,
		tables: compileTables(opts),
		mapper: NewMapper(cat, opts.FallbackType),
		log:    logger.ComponentLogger("emit"),
	}
}

// Generate resolves cat and renders the complete declaration document.
func Generate(cat *catalogue.Catalogue, opts Options) (*typegen.Result, error) {
	return NewEmitter(cat, opts).Emit()
}

// Emit resolves the catalogue and renders every class. On error no result is
// returned; a partially rendered document is never exposed.
func (e *Emitter) Emit() (*typegen.Result, error) {
	start := time.Now()

	report, err := catalogue.Resolve(e.cat, catalogue.ResolveOptions{
		Required:                 e.opts.Synthesized,
		SynthesizeMissingParents: e.opts.SynthesizeMissingParents,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve catalogue")
	}

	e.sb.Reset()
	e.emitted = typegen.NewEmissionSet()
	e.skipped = nil

	if e.opts.SourceName != "" {
		fmt.Fprintf(&e.sb, "%s %s\n", typegen.SourceLinePrefix, e.opts.SourceName)
	}
	if e.opts.Preamble {
		e.sb.WriteString(Preamble)
	}

	for _, record := range e.cat.Classes() {
		if err := e.emitClass(record); err != nil {
			return nil, err
		}
	}

	e.log.Infow("declarations emitted",
		logger.FieldCount, e.emitted.Len(),
		"skipped", len(e.skipped),
		"synthesized", len(report.Synthesized),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return &typegen.Result{
		Output:      e.sb.String(),
		Classes:     e.emitted.Names(),
		Skipped:     e.skipped,
		Synthesized: report.Synthesized,
	}, nil
}

// emitClass writes record's block after its ancestors' blocks. Ignored and
// already emitted classes are a no-op.
func (e *Emitter) emitClass(record *catalogue.ClassRecord) error {
	if e.tables.ignored[record.Name] || e.emitted.Contains(record.Name) {
		return nil
	}

	if record.Parent != nil {
		if err := e.emitClass(record.Parent); err != nil {
			return err
		}
		if e.tables.ignored[record.Parent.Name] {
			e.log.Warnw("class extends an ignored class",
				logger.FieldClass, record.Name, logger.FieldParent, record.Parent.Name)
		}
	}

	name := util.Prettify(record.Name)

	var block strings.Builder
	fmt.Fprintf(&block, "\n// Based on %s.pex\n", name)
	if record.Parent != nil {
		fmt.Fprintf(&block, "export declare class %s extends %s {\n", name, util.Prettify(record.Parent.Name))
	} else {
		fmt.Fprintf(&block, "export declare class %s {\n", name)
	}
	fmt.Fprintf(&block, "%sstatic from(form: %s): %s;\n", e.opts.Indent, util.Prettify(e.opts.FallbackType), name)

	if err := e.writeFunctions(&block, record.Name, record.MemberFunctions, false); err != nil {
		return err
	}
	if err := e.writeFunctions(&block, record.Name, record.GlobalFunctions, true); err != nil {
		return err
	}
	block.WriteString("}\n")

	e.sb.WriteString(block.String())
	e.emitted.Add(record.Name)
	e.log.Debugw("class emitted", logger.FieldClass, record.Name,
		"members", len(record.MemberFunctions), "globals", len(record.GlobalFunctions))
	return nil
}

func (e *Emitter) writeFunctions(block *strings.Builder, className string, fns []catalogue.FunctionRecord, static bool) error {
	for _, fn := range fns {
		line, ok, err := e.renderFunction(className, fn, static)
		if err != nil {
			return err
		}
		if !ok {
			e.skipped = append(e.skipped, className+"."+fn.Name)
			continue
		}
		block.WriteString(line)
	}
	return nil
}
