package catalogue

import (
	"encoding/json"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teranos/papyrus-typegen/errors"
)

// dump mirrors the top level of the reflection dump.
type dump struct {
	Types *orderedmap.OrderedMap[string, *ClassRecord] `json:"types"`
}

// ParseFile reads a reflection dump from disk and decodes it.
func ParseFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dump %s", path)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse dump %s", path)
	}
	return cat, nil
}

// Parse decodes a reflection dump. Class order follows the key order of the
// "types" object. A null class entry decodes as an empty record.
func Parse(data []byte) (*Catalogue, error) {
	var doc dump
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.Mark(err, errors.ErrMalformedCatalogue), "invalid dump JSON")
	}
	if doc.Types == nil {
		return nil, errors.NewMalformedCatalogueError(`dump has no "types" object`)
	}

	cat := New()
	for pair := doc.Types.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "" {
			return nil, errors.NewMalformedCatalogueError("dump contains a class with an empty name")
		}
		cat.Add(pair.Key, pair.Value)
	}
	return cat, nil
}
