package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-browser/internal/domain"
	"github.com/spec-kit/ticket-browser/internal/events"
	"github.com/spec-kit/ticket-browser/internal/repository"
)

// TicketListCache holds the full ticket list between store reads.
type TicketListCache interface {
	GetList(ctx context.Context) ([]domain.Ticket, bool, error)
	SetList(ctx context.Context, tickets []domain.Ticket) error
	Invalidate(ctx context.Context) error
}

// TicketService coordinates ticket reads and writes.
type TicketService struct {
	tickets    repository.TicketRepository
	cache      TicketListCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service. Cache and
// Dispatcher are optional.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Cache      TicketListCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// ListTickets returns every ticket, served from the cache when warm. Cache
// failures are logged and fall through to the store.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	if s.cache != nil {
		tickets, ok, err := s.cache.GetList(ctx)
		if err != nil {
			s.logger.Warn("ticket cache read failed", zap.Error(err))
		} else if ok {
			return tickets, nil
		}
	}

	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, tickets); err != nil {
			s.logger.Warn("ticket cache write failed", zap.Error(err))
		}
	}
	return tickets, nil
}

// GetTicket fetches a single ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// CreateTicket stores a new ticket and announces it.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      strings.TrimSpace(input.Status),
		Priority:    strings.TrimSpace(input.Priority),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Status:   ticket.Status,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// RegisterHandlers subscribes cache maintenance to ticket events.
func (s *TicketService) RegisterHandlers() {
	if s.dispatcher == nil || s.cache == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventTicketCreated, s.handleTicketCreated)
}

func (s *TicketService) handleTicketCreated(ctx context.Context, event events.Event) error {
	return s.cache.Invalidate(ctx)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("ticket_id", event.TicketID),
			zap.Error(err))
	}
}
