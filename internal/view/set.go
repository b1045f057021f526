package view

import "sort"

// StringSet is an unordered set of facet values.
type StringSet struct {
	items map[string]struct{}
}

// NewStringSet builds a set holding the given values.
func NewStringSet(values ...string) StringSet {
	s := StringSet{items: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

func (s *StringSet) Add(value string) {
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	s.items[value] = struct{}{}
}

func (s *StringSet) Remove(value string) {
	delete(s.items, value)
}

func (s StringSet) Contains(value string) bool {
	_, ok := s.items[value]
	return ok
}

// Toggle adds value when absent and removes it when present. It reports
// whether value is a member afterwards.
func (s *StringSet) Toggle(value string) bool {
	if s.Contains(value) {
		s.Remove(value)
		return false
	}
	s.Add(value)
	return true
}

func (s StringSet) Len() int {
	return len(s.items)
}

// Values returns the members in ascending order.
func (s StringSet) Values() []string {
	out := make([]string, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy.
func (s StringSet) Clone() StringSet {
	return NewStringSet(s.Values()...)
}
