package typescript

import (
	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/typegen/util"
)

// primitiveTypes maps every non-object raw tag to its TypeScript type.
var primitiveTypes = map[catalogue.RawType]string{
	catalogue.RawInt:         "number",
	catalogue.RawFloat:       "number",
	catalogue.RawBool:        "boolean",
	catalogue.RawString:      "string",
	catalogue.RawIntArray:    "number[]",
	catalogue.RawFloatArray:  "number[]",
	catalogue.RawBoolArray:   "boolean[]",
	catalogue.RawStringArray: "string[]",
	catalogue.RawNone:        "void",
	catalogue.RawObjectArray: "object[]",
}

// Mapper converts reflected type descriptors into TypeScript type expressions.
type Mapper struct {
	cat      *catalogue.Catalogue
	fallback string
}

// NewMapper creates a mapper resolving Object references against cat.
// References to classes cat lacks map to fallback.
func NewMapper(cat *catalogue.Catalogue, fallback string) *Mapper {
	if fallback == "" {
		fallback = DefaultFallbackType
	}
	return &Mapper{cat: cat, fallback: fallback}
}

// MapType returns the TypeScript type for td. A tag outside the supported
// set is an ErrUnknownTypeTag.
func (m *Mapper) MapType(td catalogue.TypeDescriptor) (string, error) {
	if ts, ok := primitiveTypes[td.RawType]; ok {
		return ts, nil
	}

	if td.RawType == catalogue.RawObject {
		if td.ObjectTypeName != "" && m.cat.Has(td.ObjectTypeName) {
			return util.Prettify(td.ObjectTypeName), nil
		}
		return util.Prettify(m.fallback), nil
	}

	return "", errors.NewUnknownTypeTagError(string(td.RawType))
}
