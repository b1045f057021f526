package dto

import "github.com/spec-kit/ticket-browser/internal/domain"

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Queue       string `json:"queue,omitempty"`
	Language    string `json:"language,omitempty"`
}

// NewTicketResponse maps a domain ticket onto the wire shape.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Priority:    ticket.Priority,
		Queue:       ticket.Queue,
		Language:    ticket.Language,
	}
}
