package view

import (
	"fmt"
	"slices"
	"testing"

	"golang.org/x/text/language"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

func scenarioTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: 1, Title: "A", Priority: "high"},
		{ID: 2, Title: "B", Priority: "low"},
		{ID: 3, Title: "C", Priority: "medium"},
	}
}

func sampleTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: 1, Title: "Login fails", Description: "SSO redirect loop", Status: "open", Priority: "high", Queue: "Technical Support"},
		{ID: 2, Title: "Invoice missing", Description: "March invoice", Status: "closed", Priority: "low", Queue: "Billing"},
		{ID: 3, Title: "Refund request", Description: "Double charge on card", Status: "open", Priority: "medium", Queue: "Billing"},
		{ID: 4, Title: "Feature idea", Description: "Dark mode please", Status: "in_progress", Queue: "Product"},
		{ID: 5, Title: "", Description: "", Status: "open", Priority: "HIGH", Queue: "Technical Support"},
		{ID: 6, Title: "Password reset", Description: "Reset email never arrives", Priority: "urgent"},
	}
}

func ids(tickets []domain.Ticket) []int64 {
	out := make([]int64, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func TestScenario(t *testing.T) {
	engine := NewEngine(scenarioTickets(), WithSort(SortByPriority, Descending))
	if got := ids(engine.View().Items); !slices.Equal(got, []int64{1, 3, 2}) {
		t.Fatalf("expected [1 3 2], got %v", got)
	}

	engine.ToggleFacet(FacetPriority, "low")
	if got := ids(engine.View().Items); !slices.Equal(got, []int64{2}) {
		t.Fatalf("expected [2], got %v", got)
	}

	engine.ClearFilters()
	engine.pageSize = 1
	engine.SetPage(2)
	if got := ids(engine.View().Items); !slices.Equal(got, []int64{3}) {
		t.Fatalf("expected [3], got %v", got)
	}
}

func TestDefaults(t *testing.T) {
	engine := NewEngine(sampleTickets())
	v := engine.View()
	if v.PageSize != DefaultPageSize || v.Page != 1 {
		t.Fatalf("expected page 1 of size %d, got page %d size %d", DefaultPageSize, v.Page, v.PageSize)
	}
	if got := ids(v.Items); !slices.Equal(got, []int64{6, 5, 4, 3, 2, 1}) {
		t.Fatalf("expected id descending, got %v", got)
	}
}

func TestNewEngineCopiesCollection(t *testing.T) {
	tickets := sampleTickets()
	engine := NewEngine(tickets)
	tickets[0].Title = "mutated"
	engine.SetQuery("login")
	if engine.View().Filtered != 1 {
		t.Fatalf("engine must not observe caller mutations")
	}
}

func TestAbsentPriorityExcluded(t *testing.T) {
	engine := NewEngine(sampleTickets())
	engine.ToggleFacet(FacetPriority, "high")
	for _, ticket := range engine.Filtered() {
		if ticket.Priority == "" {
			t.Fatalf("ticket %d without priority matched a priority filter", ticket.ID)
		}
	}
	if got := ids(engine.Filtered()); !slices.Equal(got, []int64{1}) {
		t.Fatalf("expected exact-value match [1], got %v", got)
	}
}

func TestFacetSemantics(t *testing.T) {
	engine := NewEngine(sampleTickets())

	engine.ToggleFacet(FacetStatus, "open")
	open := engine.View().Filtered
	engine.ToggleFacet(FacetStatus, "closed")
	openOrClosed := engine.View().Filtered
	if openOrClosed < open {
		t.Fatalf("OR within a facet must not shrink results: %d < %d", openOrClosed, open)
	}
	if openOrClosed != 4 {
		t.Fatalf("expected 4 open or closed tickets, got %d", openOrClosed)
	}

	engine.ToggleFacet(FacetQueue, "Billing")
	withQueue := engine.View().Filtered
	if withQueue > openOrClosed {
		t.Fatalf("AND across facets must not grow results: %d > %d", withQueue, openOrClosed)
	}
	if got := ids(engine.Filtered()); !slices.Equal(got, []int64{2, 3}) {
		t.Fatalf("expected [2 3], got %v", got)
	}

	engine.ToggleFacet(FacetStatus, "closed")
	if got := ids(engine.Filtered()); !slices.Equal(got, []int64{3}) {
		t.Fatalf("expected toggling off closed to leave [3], got %v", got)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2, 3, 4, 5, 6}},
		{"INVOICE", []int64{2}},
		{"charge", []int64{3}},
		{"re", []int64{1, 3, 4, 6}},
		{"nothing matches", []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			engine := NewEngine(sampleTickets())
			engine.SetQuery(tt.query)
			if got := ids(engine.Filtered()); !slices.Equal(got, tt.want) {
				t.Fatalf("query %q: expected %v, got %v", tt.query, tt.want, got)
			}
		})
	}
}

func TestEmptyResultIsValidView(t *testing.T) {
	engine := NewEngine(sampleTickets())
	engine.SetQuery("zzz")
	v := engine.View()
	if v.Filtered != 0 || len(v.Items) != 0 || v.TotalPages != 1 || v.Page != 1 {
		t.Fatalf("unexpected empty view: %+v", v)
	}
	if v.Start != 0 || v.End != 0 {
		t.Fatalf("expected zero bounds, got %d-%d", v.Start, v.End)
	}
}

func TestSortByIDReverses(t *testing.T) {
	engine := NewEngine(sampleTickets(), WithSort(SortByID, Ascending))
	asc := ids(engine.View().Items)
	engine.ToggleDirection()
	desc := ids(engine.View().Items)
	slices.Reverse(desc)
	if !slices.Equal(asc, desc) {
		t.Fatalf("expected reversed sequences, got %v and %v", asc, desc)
	}
}

func TestSortByPriorityDescending(t *testing.T) {
	engine := NewEngine(sampleTickets())
	engine.SetSort(SortByPriority, Descending)
	var ranks []int
	for _, ticket := range engine.View().Items {
		ranks = append(ranks, domain.PriorityRank(ticket.Priority))
	}
	if !slices.IsSortedFunc(ranks, func(a, b int) int { return b - a }) {
		t.Fatalf("expected ranks high to low, got %v", ranks)
	}
	// Equal ranks keep collection order.
	if got := ids(engine.View().Items); !slices.Equal(got, []int64{1, 5, 3, 2, 4, 6}) {
		t.Fatalf("expected stable order [1 5 3 2 4 6], got %v", got)
	}
}

func TestSortByTitle(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "cherry"},
		{ID: 4},
	}
	engine := NewEngine(tickets, WithCollator(language.English))
	engine.SetSort(SortByTitle, Ascending)
	if got := ids(engine.View().Items); !slices.Equal(got, []int64{4, 2, 1, 3}) {
		t.Fatalf("expected locale order [4 2 1 3], got %v", got)
	}
}

func TestSetSortIgnoresUnknownKey(t *testing.T) {
	engine := NewEngine(sampleTickets())
	engine.SetSort("created_at", Ascending)
	if engine.Order() != (Order{Key: SortByID, Direction: Descending}) {
		t.Fatalf("unexpected order %+v", engine.Order())
	}
}

func TestPaginationCoversAllItems(t *testing.T) {
	var tickets []domain.Ticket
	for i := 1; i <= 23; i++ {
		tickets = append(tickets, domain.Ticket{ID: int64(i), Title: fmt.Sprintf("t%d", i)})
	}
	for _, size := range PageSizes {
		engine := NewEngine(tickets, WithPageSize(size), WithSort(SortByID, Ascending))
		v := engine.View()
		wantPages := (23 + size - 1) / size
		if v.TotalPages != wantPages {
			t.Fatalf("size %d: expected %d pages, got %d", size, wantPages, v.TotalPages)
		}
		var seen []int64
		for page := 1; page <= v.TotalPages; page++ {
			engine.SetPage(page)
			seen = append(seen, ids(engine.View().Items)...)
		}
		if len(seen) != 23 || !slices.IsSorted(seen) || seen[0] != 1 || seen[22] != 23 {
			t.Fatalf("size %d: pages did not cover items exactly: %v", size, seen)
		}
	}
}

func TestPaginationBoundsAndClamp(t *testing.T) {
	var tickets []domain.Ticket
	for i := 1; i <= 45; i++ {
		tickets = append(tickets, domain.Ticket{ID: int64(i)})
	}
	engine := NewEngine(tickets, WithPageSize(10))

	engine.SetPage(5)
	v := engine.View()
	if v.Page != 5 || v.Start != 41 || v.End != 45 || len(v.Items) != 5 {
		t.Fatalf("unexpected last page: %+v", v)
	}

	engine.SetPage(99)
	if engine.View().Page != 5 {
		t.Fatalf("expected clamp to 5, got %d", engine.View().Page)
	}
	engine.SetPage(-3)
	if engine.View().Page != 1 {
		t.Fatalf("expected clamp to 1, got %d", engine.View().Page)
	}
	engine.PrevPage()
	if engine.View().Page != 1 {
		t.Fatalf("PrevPage on first page moved to %d", engine.View().Page)
	}

	engine.SetPage(5)
	if err := engine.SetPageSize(50); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if engine.View().Page != 1 || engine.View().TotalPages != 1 {
		t.Fatalf("expected page clamped to 1 of 1, got %+v", engine.View())
	}
}

func TestSetPageSizeKeepsPageWhenValid(t *testing.T) {
	var tickets []domain.Ticket
	for i := 1; i <= 100; i++ {
		tickets = append(tickets, domain.Ticket{ID: int64(i)})
	}
	engine := NewEngine(tickets, WithPageSize(10))
	engine.SetPage(3)
	if err := engine.SetPageSize(20); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if engine.View().Page != 3 {
		t.Fatalf("expected page 3 kept, got %d", engine.View().Page)
	}
	if err := engine.SetPageSize(15); err != ErrInvalidPageSize {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
}

func TestPageResets(t *testing.T) {
	var tickets []domain.Ticket
	for i := 1; i <= 50; i++ {
		status := "open"
		if i%2 == 0 {
			status = "closed"
		}
		tickets = append(tickets, domain.Ticket{ID: int64(i), Title: "ticket", Status: status})
	}
	engine := NewEngine(tickets, WithPageSize(10))

	engine.SetPage(3)
	engine.SetQuery("tick")
	if engine.View().Page != 1 {
		t.Fatalf("search must reset page, got %d", engine.View().Page)
	}

	engine.SetPage(2)
	engine.ToggleFacet(FacetStatus, "open")
	if engine.View().Page != 1 {
		t.Fatalf("facet toggle must reset page, got %d", engine.View().Page)
	}

	engine.SetPage(2)
	engine.SetSort(SortByTitle, Ascending)
	engine.ToggleDirection()
	if engine.View().Page != 2 {
		t.Fatalf("sort change must not reset page, got %d", engine.View().Page)
	}
	if engine.Query() != "tick" || !engine.Selection(FacetStatus).Contains("open") {
		t.Fatalf("sort change must keep search and facets")
	}
	if err := engine.SetPageSize(20); err != nil {
		t.Fatalf("set page size: %v", err)
	}
	if engine.Query() != "tick" || engine.Selection(FacetStatus).Len() != 1 {
		t.Fatalf("page size change must keep search and facets")
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		page, pages int
		want        []int
	}{
		{1, 1, []int{1}},
		{2, 3, []int{1, 2, 3}},
		{1, 10, []int{1, 2, 3, 4, 5}},
		{3, 10, []int{1, 2, 3, 4, 5}},
		{6, 10, []int{4, 5, 6, 7, 8}},
		{9, 10, []int{6, 7, 8, 9, 10}},
		{10, 10, []int{6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		if got := pageWindow(tt.page, tt.pages); !slices.Equal(got, tt.want) {
			t.Fatalf("window(%d, %d): expected %v, got %v", tt.page, tt.pages, tt.want, got)
		}
	}
}

func TestFacetsAndSummaryIgnoreFilters(t *testing.T) {
	engine := NewEngine(sampleTickets())
	engine.ToggleFacet(FacetQueue, "Billing")
	engine.SetQuery("refund")

	facets := engine.Facets()
	want := []FacetValue{
		{Value: "Billing", Count: 2, Selected: true},
		{Value: "Product", Count: 1},
		{Value: "Technical Support", Count: 2},
	}
	if !slices.Equal(facets.Queue, want) {
		t.Fatalf("expected %+v, got %+v", want, facets.Queue)
	}
	if len(facets.Values(FacetStatus)) != 3 {
		t.Fatalf("expected 3 status values, got %+v", facets.Status)
	}
	priorities := facets.Priority
	if len(priorities) != 5 || priorities[0].Value != "HIGH" {
		t.Fatalf("expected raw priority values sorted, got %+v", priorities)
	}

	summary := engine.Summary()
	if summary != (Summary{Total: 6, High: 2, Medium: 1, Low: 1}) {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestSelectAndDetail(t *testing.T) {
	engine := NewEngine(sampleTickets())
	if _, ok := engine.Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if err := engine.Select(42); err != ErrTicketNotFound {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
	if err := engine.Select(5); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := engine.Select(4); err != nil {
		t.Fatalf("select: %v", err)
	}
	selected, ok := engine.Selected()
	if !ok || selected.ID != 4 {
		t.Fatalf("expected selection replaced by 4, got %+v", selected)
	}
	engine.CloseDetail()
	if _, ok := engine.Selected(); ok {
		t.Fatalf("expected selection cleared")
	}

	d := DetailOf(sampleTickets()[4])
	if d.Title != domain.UntitledTicket || d.Description != domain.NoDescriptionMessage {
		t.Fatalf("expected fallbacks, got %+v", d)
	}
	if d.PriorityLevel != domain.PriorityHigh {
		t.Fatalf("expected high level, got %q", d.PriorityLevel)
	}
	for _, f := range d.Metadata {
		if f.Label == "Language" {
			t.Fatalf("absent language must be omitted")
		}
	}
	if len(d.Metadata) != 4 {
		t.Fatalf("expected id, status, priority, queue, got %+v", d.Metadata)
	}
}

func TestStringSet(t *testing.T) {
	var s StringSet
	if s.Contains("a") || s.Len() != 0 {
		t.Fatalf("zero set must be empty")
	}
	if !s.Toggle("b") || !s.Toggle("a") || s.Toggle("b") {
		t.Fatalf("unexpected toggle results")
	}
	s.Add("c")
	clone := s.Clone()
	s.Remove("a")
	if !slices.Equal(s.Values(), []string{"c"}) {
		t.Fatalf("expected [c], got %v", s.Values())
	}
	if !slices.Equal(clone.Values(), []string{"a", "c"}) {
		t.Fatalf("clone must be independent, got %v", clone.Values())
	}
}
