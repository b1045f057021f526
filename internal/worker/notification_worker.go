package worker

import (
	"github.com/spec-kit/ticket-browser/internal/service"
)

// StartEventWorkers registers the ticket event subscribers.
func StartEventWorkers(ticketService *service.TicketService, notificationService *service.NotificationService) {
	if ticketService != nil {
		ticketService.RegisterHandlers()
	}
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
}
