package view

import "github.com/spec-kit/ticket-browser/internal/domain"

// PageSizes are the page sizes the engine accepts.
var PageSizes = []int{10, 20, 50, 100}

const (
	DefaultPageSize = 20
	windowSize      = 5
)

func validPageSize(size int) bool {
	for _, p := range PageSizes {
		if p == size {
			return true
		}
	}
	return false
}

// totalPages is ceil(n/size) with a minimum of one page.
func totalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

func clampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// pageBounds returns the half-open offsets of page within n items.
func pageBounds(n, page, size int) (int, int) {
	start := (page - 1) * size
	if start > n {
		start = n
	}
	end := start + size
	if end > n {
		end = n
	}
	return start, end
}

// pageWindow returns up to five page numbers centred on page.
func pageWindow(page, pages int) []int {
	count := min(windowSize, pages)
	first := page - windowSize/2
	if first > pages-count+1 {
		first = pages - count + 1
	}
	if first < 1 {
		first = 1
	}
	out := make([]int, count)
	for i := range out {
		out[i] = first + i
	}
	return out
}

// View is one rendered page of the filtered and sorted tickets.
type View struct {
	Items      []domain.Ticket
	Filtered   int
	Page       int
	PageSize   int
	TotalPages int
	// Start and End are 1-based display bounds; both are zero when nothing
	// matched.
	Start  int
	End    int
	Window []int
}

func paginate(sorted []domain.Ticket, page, size int) View {
	pages := totalPages(len(sorted), size)
	page = clampPage(page, pages)
	start, end := pageBounds(len(sorted), page, size)

	v := View{
		Items:      sorted[start:end],
		Filtered:   len(sorted),
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
		End:        end,
		Window:     pageWindow(page, pages),
	}
	if end > start {
		v.Start = start + 1
	}
	return v
}
