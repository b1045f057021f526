package domain

import "strings"

// Display fallbacks for tickets missing free-text fields.
const (
	UntitledTicket       = "Untitled Ticket"
	NoDescriptionMessage = "No description available"
)

// Priority levels recognized for ranking and coloring. Any other priority
// value is kept as-is but ranks below all of them.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Ticket is a support request row. Only ID is guaranteed; every other
// field may be empty.
type Ticket struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Queue       string `json:"queue,omitempty"`
	Language    string `json:"language,omitempty"`
}

// DisplayTitle returns the title or a placeholder when it is empty.
func (t Ticket) DisplayTitle() string {
	if t.Title == "" {
		return UntitledTicket
	}
	return t.Title
}

// DisplayDescription returns the description or a placeholder when it is empty.
func (t Ticket) DisplayDescription() string {
	if t.Description == "" {
		return NoDescriptionMessage
	}
	return t.Description
}

// PriorityLevel normalizes a priority to high, medium or low, or "" when unranked.
func PriorityLevel(priority string) string {
	switch strings.ToLower(priority) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityMedium:
		return PriorityMedium
	case PriorityLow:
		return PriorityLow
	default:
		return ""
	}
}

// PriorityRank maps high/medium/low to 3/2/1, case-insensitively. Unranked is 0.
func PriorityRank(priority string) int {
	switch PriorityLevel(priority) {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}
