package domain

import "testing"

func TestPriorityRank(t *testing.T) {
	cases := map[string]int{
		"high":     3,
		"HIGH":     3,
		"Medium":   2,
		"low":      1,
		"critical": 0,
		"":         0,
	}
	for input, want := range cases {
		if got := PriorityRank(input); got != want {
			t.Errorf("PriorityRank(%q): expected %d, got %d", input, want, got)
		}
	}
}

func TestDisplayFallbacks(t *testing.T) {
	var ticket Ticket
	if got := ticket.DisplayTitle(); got != UntitledTicket {
		t.Errorf("expected %q, got %q", UntitledTicket, got)
	}
	if got := ticket.DisplayDescription(); got != NoDescriptionMessage {
		t.Errorf("expected %q, got %q", NoDescriptionMessage, got)
	}

	ticket = Ticket{Title: "Login issue", Description: "Cannot log in"}
	if got := ticket.DisplayTitle(); got != "Login issue" {
		t.Errorf("expected title, got %q", got)
	}
	if got := ticket.DisplayDescription(); got != "Cannot log in" {
		t.Errorf("expected description, got %q", got)
	}
}
