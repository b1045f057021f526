package view

import (
	"sort"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

// Facet names one of the categorical ticket fields used for filtering.
type Facet int

const (
	FacetStatus Facet = iota
	FacetPriority
	FacetQueue
)

func (f Facet) String() string {
	switch f {
	case FacetStatus:
		return "status"
	case FacetPriority:
		return "priority"
	case FacetQueue:
		return "queue"
	default:
		return "unknown"
	}
}

// Facets lists every facet in display order.
var Facets = []Facet{FacetStatus, FacetPriority, FacetQueue}

func (f Facet) valueOf(t domain.Ticket) string {
	switch f {
	case FacetStatus:
		return t.Status
	case FacetPriority:
		return t.Priority
	case FacetQueue:
		return t.Queue
	default:
		return ""
	}
}

// FacetValue is one distinct value of a facet with its count over the whole
// collection.
type FacetValue struct {
	Value    string
	Count    int
	Selected bool
}

// FacetSet holds the derived values of each facet.
type FacetSet struct {
	Status   []FacetValue
	Priority []FacetValue
	Queue    []FacetValue
}

// Values returns the entries of the given facet.
func (fs FacetSet) Values(f Facet) []FacetValue {
	switch f {
	case FacetStatus:
		return fs.Status
	case FacetPriority:
		return fs.Priority
	case FacetQueue:
		return fs.Queue
	default:
		return nil
	}
}

type facetCounts map[Facet]map[string]int

// countFacets tallies non-empty facet values across the collection.
func countFacets(tickets []domain.Ticket) facetCounts {
	counts := facetCounts{}
	for _, f := range Facets {
		counts[f] = map[string]int{}
	}
	for _, t := range tickets {
		for _, f := range Facets {
			if v := f.valueOf(t); v != "" {
				counts[f][v]++
			}
		}
	}
	return counts
}

func (c facetCounts) values(f Facet, selected StringSet) []FacetValue {
	keys := make([]string, 0, len(c[f]))
	for v := range c[f] {
		keys = append(keys, v)
	}
	sort.Strings(keys)

	out := make([]FacetValue, 0, len(keys))
	for _, v := range keys {
		out = append(out, FacetValue{Value: v, Count: c[f][v], Selected: selected.Contains(v)})
	}
	return out
}
