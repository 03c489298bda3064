package separators

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Set is an ordered collection of unique separators. The order of the first insertion of
// each value is kept and is observable through Values.
// A nil *Set is a valid empty set for reading.
type Set struct {
	values *orderedmap.OrderedMap[string, struct{}]
}

// NewSet creates a Set containing the given values in order, skipping duplicates
func NewSet(values ...string) *Set {
	s := &Set{values: orderedmap.New[string, struct{}]()}
	return s.Add(values...)
}

// Add appends the values that are not in the set yet and returns the set itself
func (s *Set) Add(values ...string) *Set {
	if s.values == nil {
		s.values = orderedmap.New[string, struct{}]()
	}
	for _, v := range values {
		if _, present := s.values.Get(v); !present {
			s.values.Set(v, struct{}{})
		}
	}
	return s
}

func (s *Set) Has(value string) bool {
	if s == nil || s.values == nil {
		return false
	}
	_, present := s.values.Get(value)
	return present
}

func (s *Set) Len() int {
	if s == nil || s.values == nil {
		return 0
	}
	return s.values.Len()
}

// Values returns a copy of the set content in insertion order
func (s *Set) Values() []string {
	res := make([]string, 0, s.Len())
	if s.Len() == 0 {
		return res
	}
	for pair := s.values.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, pair.Key)
	}
	return res
}

func (s *Set) Clone() *Set {
	return NewSet(s.Values()...)
}
