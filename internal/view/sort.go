package view

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

// SortKey selects the field the filtered set is ordered by.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
)

// SortKeys lists the keys in the order the browser cycles through them.
var SortKeys = []SortKey{SortByID, SortByPriority, SortByTitle}

// Direction is the sort order applied on top of a key's base comparator.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Order is a sort key with its direction.
type Order struct {
	Key       SortKey
	Direction Direction
}

// Valid reports whether the key and direction are known values.
func (o Order) Valid() bool {
	return slices.Contains(SortKeys, o.Key) && (o.Direction == Ascending || o.Direction == Descending)
}

// comparator compares by the key in ascending order and negates the result
// for Descending, uniformly across keys. Priority compares by rank, so a
// descending priority sort lists high before medium before low before
// unranked.
func (o Order) comparator(collator *collate.Collator) func(a, b domain.Ticket) int {
	var base func(a, b domain.Ticket) int
	switch o.Key {
	case SortByPriority:
		base = func(a, b domain.Ticket) int {
			return cmp.Compare(domain.PriorityRank(a.Priority), domain.PriorityRank(b.Priority))
		}
	case SortByTitle:
		base = func(a, b domain.Ticket) int {
			return collator.CompareString(a.Title, b.Title)
		}
	default:
		base = func(a, b domain.Ticket) int {
			return cmp.Compare(a.ID, b.ID)
		}
	}
	if o.Direction == Ascending {
		return base
	}
	return func(a, b domain.Ticket) int { return -base(a, b) }
}

// Sort returns a stably ordered copy of tickets.
func (o Order) Sort(tickets []domain.Ticket, collator *collate.Collator) []domain.Ticket {
	out := slices.Clone(tickets)
	slices.SortStableFunc(out, o.comparator(collator))
	return out
}
