package typegen

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// EmissionSet is the ordered, deduplicated set of class names already
// emitted in one run. It only grows.
type EmissionSet struct {
	names *orderedmap.OrderedMap[string, struct{}]
}

// NewEmissionSet creates an empty set.
func NewEmissionSet() *EmissionSet {
	return &EmissionSet{names: orderedmap.New[string, struct{}]()}
}

// Add records name as emitted. It returns false if name was already present.
func (s *EmissionSet) Add(name string) bool {
	_, present := s.names.Set(name, struct{}{})
	return !present
}

// Contains reports whether name has been emitted.
func (s *EmissionSet) Contains(name string) bool {
	_, ok := s.names.Get(name)
	return ok
}

// Len returns the number of emitted names.
func (s *EmissionSet) Len() int {
	return s.names.Len()
}

// Names returns emitted names in emission order.
func (s *EmissionSet) Names() []string {
	out := make([]string, 0, s.names.Len())
	for pair := s.names.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
