// Package catalogue models a reflected scripting API dump: classes keyed by
// name, their parent links and their member/global functions.
//
// A catalogue goes through two phases. Parse decodes the dump and keeps the
// declaration order of "types". Resolve rewrites every raw parent name into a
// direct *ClassRecord link, synthesizing absent ancestors, and verifies the
// parent graph is a forest. After Resolve the catalogue is read-only.
package catalogue

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RawType is the reflection dump's tag for a value's runtime type.
type RawType string

// Supported raw type tags. Anything else is rejected by the type mapper.
const (
	RawInt         RawType = "Int"
	RawFloat       RawType = "Float"
	RawBool        RawType = "Bool"
	RawString      RawType = "String"
	RawIntArray    RawType = "IntArray"
	RawFloatArray  RawType = "FloatArray"
	RawBoolArray   RawType = "BoolArray"
	RawStringArray RawType = "StringArray"
	RawNone        RawType = "None"
	RawObject      RawType = "Object"
	RawObjectArray RawType = "ObjectArray"
)

// TypeDescriptor describes an argument or return value.
// ObjectTypeName is only meaningful for RawObject and may name a class the
// catalogue does not contain.
type TypeDescriptor struct {
	RawType        RawType `json:"rawType"`
	ObjectTypeName string  `json:"objectTypeName,omitempty"`
}

// Argument is one declared parameter of a function.
type Argument struct {
	Name string         `json:"name"`
	Type TypeDescriptor `json:"type"`
}

// FunctionRecord is one callable exposed by a class.
type FunctionRecord struct {
	Name       string         `json:"name"`
	Arguments  []Argument     `json:"arguments"`
	ReturnType TypeDescriptor `json:"returnType"`
	// IsLatent marks functions that suspend and resolve later.
	IsLatent bool `json:"isLatent"`
}

// ClassRecord is one reflected class.
type ClassRecord struct {
	Name            string           `json:"-"`
	ParentName      string           `json:"parent,omitempty"`
	MemberFunctions []FunctionRecord `json:"memberFunctions"`
	GlobalFunctions []FunctionRecord `json:"globalFunctions"`

	// Parent is set by Resolve; nil for roots.
	Parent *ClassRecord `json:"-"`
	// Synthesized is true for empty stand-ins created by Resolve.
	Synthesized bool `json:"-"`
}

// HasParent reports whether the class declares a parent.
func (c *ClassRecord) HasParent() bool {
	return c.ParentName != ""
}

// Catalogue is the insertion-ordered set of class records, keyed by name.
type Catalogue struct {
	types    *orderedmap.OrderedMap[string, *ClassRecord]
	resolved bool
	report   *Report
}

// New creates an empty catalogue.
func New() *Catalogue {
	return &Catalogue{types: orderedmap.New[string, *ClassRecord]()}
}

// Add appends a record under name, replacing any record already stored under
// that name in place. The record's Name is set to name.
func (c *Catalogue) Add(name string, record *ClassRecord) {
	if record == nil {
		record = &ClassRecord{}
	}
	record.Name = name
	c.types.Set(name, record)
}

// Get returns the record for name.
func (c *Catalogue) Get(name string) (*ClassRecord, bool) {
	return c.types.Get(name)
}

// Has reports whether name is a class in the catalogue.
func (c *Catalogue) Has(name string) bool {
	_, ok := c.types.Get(name)
	return ok
}

// Len returns the number of classes.
func (c *Catalogue) Len() int {
	return c.types.Len()
}

// Names returns class names in declaration order.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, c.types.Len())
	for pair := c.types.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Classes returns records in declaration order.
func (c *Catalogue) Classes() []*ClassRecord {
	records := make([]*ClassRecord, 0, c.types.Len())
	for pair := c.types.Oldest(); pair != nil; pair = pair.Next() {
		records = append(records, pair.Value)
	}
	return records
}

// Resolved reports whether Resolve has completed on this catalogue.
func (c *Catalogue) Resolved() bool {
	return c.resolved
}
