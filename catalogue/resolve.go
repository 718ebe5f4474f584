package catalogue

import (
	"strings"

	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
)

// Synthesis names a class that must exist for dependent classes to resolve.
// If the dump omits it, Resolve adds an empty record with the given parent.
type Synthesis struct {
	Name   string
	Parent string
}

// ResolveOptions controls link resolution.
type ResolveOptions struct {
	// Required stand-ins added before linking when absent from the dump.
	Required []Synthesis
	// SynthesizeMissingParents adds an empty rootless record for every parent
	// name that does not resolve. When false, such a name is a fatal
	// ErrMalformedCatalogue.
	SynthesizeMissingParents bool
}

// Report describes what Resolve changed.
type Report struct {
	// Synthesized lists stand-in class names in the order they were added.
	Synthesized []string
}

// Resolve links every class to its parent record and verifies the parent
// graph is acyclic. It runs once per catalogue; later calls return the first
// report without touching the records.
//
// Synthesis is single-level: a stand-in is never given a further synthesized
// ancestor. A required stand-in whose own parent is absent is left rootless.
func Resolve(cat *Catalogue, opts ResolveOptions) (*Report, error) {
	if cat.resolved {
		return cat.report, nil
	}

	log := logger.ComponentLogger("resolve")
	report := &Report{}

	for _, req := range opts.Required {
		if req.Name == "" || cat.Has(req.Name) {
			continue
		}
		cat.Add(req.Name, &ClassRecord{ParentName: req.Parent, Synthesized: true})
		report.Synthesized = append(report.Synthesized, req.Name)
		log.Infow("synthesized required type", logger.FieldClass, req.Name, logger.FieldParent, req.Parent)
	}

	// Snapshot: stand-ins appended below are rootless and need no linking.
	for _, record := range cat.Classes() {
		record.Parent = nil
		if !record.HasParent() {
			continue
		}
		if record.ParentName == record.Name {
			return nil, errors.NewMalformedCatalogueError("parent cycle: %s -> %s", record.Name, record.Name)
		}

		parent, ok := cat.Get(record.ParentName)
		if !ok {
			switch {
			case record.Synthesized:
				log.Warnw("parent of synthesized type not in dump, leaving it rootless",
					logger.FieldClass, record.Name, logger.FieldParent, record.ParentName)
				record.ParentName = ""
				continue
			case !opts.SynthesizeMissingParents:
				err := errors.NewMalformedCatalogueError("parent %q of class %s not found", record.ParentName, record.Name)
				return nil, errors.WithHint(err, "enable emit.synthesize_missing_parents to stand in empty ancestors")
			}
			parent = &ClassRecord{Synthesized: true}
			cat.Add(record.ParentName, parent)
			report.Synthesized = append(report.Synthesized, record.ParentName)
			log.Infow("synthesized missing parent", logger.FieldClass, record.ParentName, "child", record.Name)
		}
		record.Parent = parent
	}

	if err := checkAcyclic(cat); err != nil {
		return nil, err
	}

	cat.resolved = true
	cat.report = report
	return report, nil
}

const (
	unvisited = iota
	visiting
	done
)

// checkAcyclic walks every parent chain once. Each class has at most one
// parent, so a chain that re-enters a class still being walked is a cycle.
func checkAcyclic(cat *Catalogue) error {
	state := make(map[*ClassRecord]int, cat.Len())

	for _, record := range cat.Classes() {
		var chain []*ClassRecord
		cur := record
		for cur != nil && state[cur] == unvisited {
			state[cur] = visiting
			chain = append(chain, cur)
			cur = cur.Parent
		}

		if cur != nil && state[cur] == visiting {
			return errors.NewMalformedCatalogueError("parent cycle: %s", describeCycle(chain, cur))
		}

		for _, c := range chain {
			state[c] = done
		}
	}
	return nil
}

func describeCycle(chain []*ClassRecord, reentry *ClassRecord) string {
	start := 0
	for i, c := range chain {
		if c == reentry {
			start = i
			break
		}
	}
	names := make([]string, 0, len(chain)-start+1)
	for _, c := range chain[start:] {
		names = append(names, c.Name)
	}
	names = append(names, reentry.Name)
	return strings.Join(names, " -> ")
}
