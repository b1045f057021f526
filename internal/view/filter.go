package view

import (
	"strings"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

// Criteria is the search text plus the selected values of each facet.
type Criteria struct {
	Query    string
	Status   StringSet
	Priority StringSet
	Queue    StringSet
}

func (c *Criteria) selection(f Facet) *StringSet {
	switch f {
	case FacetStatus:
		return &c.Status
	case FacetPriority:
		return &c.Priority
	default:
		return &c.Queue
	}
}

// Active reports whether any search text or facet selection is set.
func (c Criteria) Active() bool {
	return c.Query != "" || c.Status.Len() > 0 || c.Priority.Len() > 0 || c.Queue.Len() > 0
}

// Matches applies OR within a facet and AND across facets and the search
// text. A ticket without a value never matches a non-empty selection.
func (c Criteria) Matches(t domain.Ticket) bool {
	if c.Status.Len() > 0 && !c.Status.Contains(t.Status) {
		return false
	}
	if c.Priority.Len() > 0 && !c.Priority.Contains(t.Priority) {
		return false
	}
	if c.Queue.Len() > 0 && !c.Queue.Contains(t.Queue) {
		return false
	}
	if c.Query == "" {
		return true
	}
	query := strings.ToLower(c.Query)
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

// Apply returns the matching tickets in collection order.
func (c Criteria) Apply(tickets []domain.Ticket) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
