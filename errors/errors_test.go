package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestNewUnknownTypeTagError(t *testing.T) {
	err := NewUnknownTypeTagError("Variant")

	assert.True(t, IsUnknownTypeTag(err))
	assert.False(t, IsMalformedCatalogue(err))
	assert.Contains(t, err.Error(), `raw type "Variant"`)
	assert.Contains(t, err.Error(), "unknown type tag")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "regenerate the dump")
}

func TestNewMalformedCatalogueError(t *testing.T) {
	err := NewMalformedCatalogueError("class %s references itself", "Actor")

	assert.True(t, IsMalformedCatalogue(err))
	assert.False(t, IsUnknownTypeTag(err))
	assert.Equal(t, "class Actor references itself: malformed catalogue", err.Error())
}

func TestNewInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("emit.indent must not be empty")

	assert.True(t, IsInvalidConfig(err))
	assert.Contains(t, err.Error(), "emit.indent")
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := NewUnknownTypeTagError("Struct")
	err = Wrapf(err, "function %s.%s", "Actor", "GetRace")
	err = Wrap(err, "emit class Actor")

	assert.True(t, IsUnknownTypeTag(err))
	assert.Contains(t, err.Error(), "Actor.GetRace")
}

func TestNilHandling(t *testing.T) {
	assert.False(t, IsUnknownTypeTag(nil))
	assert.False(t, IsMalformedCatalogue(nil))
	assert.False(t, IsInvalidConfig(nil))
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, WithHint(nil, "hint"))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleNewMalformedCatalogueError() {
	err := NewMalformedCatalogueError("parent %q of %s not found", "Form", "Actor")
	fmt.Println(err)
	// Output: parent "Form" of Actor not found: malformed catalogue
}
