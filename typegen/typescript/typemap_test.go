package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/papyrus-typegen/catalogue"
	"github.com/teranos/papyrus-typegen/errors"
)

func testCatalogue(names ...string) *catalogue.Catalogue {
	cat := catalogue.New()
	for _, name := range names {
		cat.Add(name, &catalogue.ClassRecord{})
	}
	return cat
}

func TestMapTypeTable(t *testing.T) {
	mapper := NewMapper(testCatalogue("Form", "ObjectReference", "actor"), "Form")

	tests := []struct {
		name string
		td   catalogue.TypeDescriptor
		want string
	}{
		{"Int", catalogue.TypeDescriptor{RawType: catalogue.RawInt}, "number"},
		{"Float", catalogue.TypeDescriptor{RawType: catalogue.RawFloat}, "number"},
		{"Bool", catalogue.TypeDescriptor{RawType: catalogue.RawBool}, "boolean"},
		{"String", catalogue.TypeDescriptor{RawType: catalogue.RawString}, "string"},
		{"IntArray", catalogue.TypeDescriptor{RawType: catalogue.RawIntArray}, "number[]"},
		{"FloatArray", catalogue.TypeDescriptor{RawType: catalogue.RawFloatArray}, "number[]"},
		{"BoolArray", catalogue.TypeDescriptor{RawType: catalogue.RawBoolArray}, "boolean[]"},
		{"StringArray", catalogue.TypeDescriptor{RawType: catalogue.RawStringArray}, "string[]"},
		{"None", catalogue.TypeDescriptor{RawType: catalogue.RawNone}, "void"},
		{"ObjectArray", catalogue.TypeDescriptor{RawType: catalogue.RawObjectArray}, "object[]"},
		{"known Object", catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "ObjectReference"}, "ObjectReference"},
		{"known Object is prettified", catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "actor"}, "Actor"},
		{"unknown Object falls back", catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "Spell"}, "Form"},
		{"Object lookup is case-sensitive", catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "Actor"}, "Form"},
		{"Object without name falls back", catalogue.TypeDescriptor{RawType: catalogue.RawObject}, "Form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mapper.MapType(tt.td)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapTypeCustomFallback(t *testing.T) {
	mapper := NewMapper(testCatalogue(), "GAMEOBJECT")

	got, err := mapper.MapType(catalogue.TypeDescriptor{RawType: catalogue.RawObject, ObjectTypeName: "Spell"})
	require.NoError(t, err)
	assert.Equal(t, "Gameobject", got)
}

func TestMapTypeUnknownTag(t *testing.T) {
	mapper := NewMapper(testCatalogue(), "")

	for _, tag := range []catalogue.RawType{"Variant", "int", "", "Struct"} {
		t.Run(string(tag), func(t *testing.T) {
			_, err := mapper.MapType(catalogue.TypeDescriptor{RawType: tag})
			require.Error(t, err)
			assert.True(t, errors.IsUnknownTypeTag(err))
		})
	}
}
