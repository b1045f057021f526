package view

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

var (
	ErrInvalidPageSize = errors.New("page size must be one of 10, 20, 50, 100")
	ErrTicketNotFound  = errors.New("ticket not in collection")
)

// Summary counts the whole collection by priority, ignoring filters.
type Summary struct {
	Total  int
	High   int
	Medium int
	Low    int
}

// Engine derives the filtered, sorted and paginated view of a ticket
// collection. Every mutation recomputes the view synchronously. An Engine is
// not safe for concurrent use.
type Engine struct {
	tickets  []domain.Ticket
	counts   facetCounts
	summary  Summary
	collator *collate.Collator
	now      func() time.Time

	criteria Criteria
	order    Order
	page     int
	pageSize int
	selected *domain.Ticket

	filtered []domain.Ticket
	view     View
}

// Option configures an Engine.
type Option func(*Engine)

// WithPageSize sets the initial page size. Unsupported sizes are ignored.
func WithPageSize(size int) Option {
	return func(e *Engine) {
		if validPageSize(size) {
			e.pageSize = size
		}
	}
}

// WithSort sets the initial order. Unknown keys or directions are ignored.
func WithSort(key SortKey, dir Direction) Option {
	return func(e *Engine) {
		if o := (Order{Key: key, Direction: dir}); o.Valid() {
			e.order = o
		}
	}
}

// WithCollator sets the locale used for title ordering.
func WithCollator(tag language.Tag) Option {
	return func(e *Engine) {
		e.collator = collate.New(tag)
	}
}

// WithClock overrides the clock used to name export files.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine copies tickets and derives facets and summary counters once.
func NewEngine(tickets []domain.Ticket, opts ...Option) *Engine {
	e := &Engine{
		tickets:  slices.Clone(tickets),
		collator: collate.New(language.English),
		now:      time.Now,
		order:    Order{Key: SortByID, Direction: Descending},
		page:     1,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.counts = countFacets(e.tickets)
	e.summary = summarize(e.tickets)
	e.refresh()
	return e
}

func summarize(tickets []domain.Ticket) Summary {
	s := Summary{Total: len(tickets)}
	for _, t := range tickets {
		switch domain.PriorityLevel(t.Priority) {
		case domain.PriorityHigh:
			s.High++
		case domain.PriorityMedium:
			s.Medium++
		case domain.PriorityLow:
			s.Low++
		}
	}
	return s
}

func (e *Engine) refresh() {
	e.filtered = e.criteria.Apply(e.tickets)
	e.view = paginate(e.order.Sort(e.filtered, e.collator), e.page, e.pageSize)
	e.page = e.view.Page
}

// SetQuery replaces the search text and returns to the first page.
func (e *Engine) SetQuery(query string) {
	e.criteria.Query = query
	e.page = 1
	e.refresh()
}

func (e *Engine) Query() string {
	return e.criteria.Query
}

// ToggleFacet flips one facet value in or out of the selection and returns
// to the first page.
func (e *Engine) ToggleFacet(f Facet, value string) {
	e.criteria.selection(f).Toggle(value)
	e.page = 1
	e.refresh()
}

// Selection returns a copy of the selected values of a facet.
func (e *Engine) Selection(f Facet) StringSet {
	return e.criteria.selection(f).Clone()
}

// ClearFilters drops the search text and every facet selection.
func (e *Engine) ClearFilters() {
	e.criteria = Criteria{}
	e.page = 1
	e.refresh()
}

// HasFilters reports whether search text or any facet selection is active.
func (e *Engine) HasFilters() bool {
	return e.criteria.Active()
}

func (e *Engine) SetSort(key SortKey, dir Direction) {
	if o := (Order{Key: key, Direction: dir}); o.Valid() {
		e.order = o
		e.refresh()
	}
}

func (e *Engine) ToggleDirection() {
	e.order.Direction = e.order.Direction.Flip()
	e.refresh()
}

func (e *Engine) Order() Order {
	return e.order
}

// SetPage moves to page k, clamped to the valid range.
func (e *Engine) SetPage(k int) {
	e.page = k
	e.refresh()
}

func (e *Engine) NextPage() {
	e.SetPage(e.page + 1)
}

func (e *Engine) PrevPage() {
	e.SetPage(e.page - 1)
}

// SetPageSize changes the page size. The current page is kept, clamped to
// the new range.
func (e *Engine) SetPageSize(size int) error {
	if !validPageSize(size) {
		return ErrInvalidPageSize
	}
	e.pageSize = size
	e.refresh()
	return nil
}

// View returns the current page.
func (e *Engine) View() View {
	return e.view
}

// Filtered returns the filtered tickets in collection order.
func (e *Engine) Filtered() []domain.Ticket {
	return slices.Clone(e.filtered)
}

// Facets returns the facet values of the whole collection with their
// selection state.
func (e *Engine) Facets() FacetSet {
	return FacetSet{
		Status:   e.counts.values(FacetStatus, e.criteria.Status),
		Priority: e.counts.values(FacetPriority, e.criteria.Priority),
		Queue:    e.counts.values(FacetQueue, e.criteria.Queue),
	}
}

func (e *Engine) Summary() Summary {
	return e.summary
}

// Len is the size of the whole collection.
func (e *Engine) Len() int {
	return len(e.tickets)
}

// Select opens the detail overlay for the ticket with id, replacing any
// previous selection.
func (e *Engine) Select(id int64) error {
	idx := slices.IndexFunc(e.tickets, func(t domain.Ticket) bool { return t.ID == id })
	if idx < 0 {
		return ErrTicketNotFound
	}
	t := e.tickets[idx]
	e.selected = &t
	return nil
}

func (e *Engine) Selected() (domain.Ticket, bool) {
	if e.selected == nil {
		return domain.Ticket{}, false
	}
	return *e.selected, true
}

func (e *Engine) CloseDetail() {
	e.selected = nil
}

// Export writes the filtered set to a dated CSV file in dir.
func (e *Engine) Export(dir string) (string, error) {
	return writeExport(dir, e.now(), e.filtered)
}

// Field is one labelled metadata entry of the detail overlay.
type Field struct {
	Label string
	Value string
}

// Detail is the content of the detail overlay.
type Detail struct {
	Title         string
	Description   string
	Status        string
	Priority      string
	PriorityLevel string
	Metadata      []Field
}

// DetailOf builds the overlay content for t. Metadata carries only the
// optional fields that are present.
func DetailOf(t domain.Ticket) Detail {
	d := Detail{
		Title:         t.DisplayTitle(),
		Description:   t.DisplayDescription(),
		Status:        t.Status,
		Priority:      t.Priority,
		PriorityLevel: domain.PriorityLevel(t.Priority),
		Metadata:      []Field{{Label: "ID", Value: "#" + strconv.FormatInt(t.ID, 10)}},
	}
	for _, f := range []Field{
		{Label: "Status", Value: t.Status},
		{Label: "Priority", Value: t.Priority},
		{Label: "Queue", Value: t.Queue},
		{Label: "Language", Value: t.Language},
	} {
		if strings.TrimSpace(f.Value) != "" {
			d.Metadata = append(d.Metadata, f)
		}
	}
	return d
}
