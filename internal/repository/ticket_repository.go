package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

// ErrTicketNotFound is returned when no row matches the requested id.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository encapsulates ticket persistence. Both backends read the
// support-ticket dataset layout (subject, body, type) and expose it as
// title, description and status.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Count(ctx context.Context) (int, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const pgSelectTickets = `
        SELECT id, subject, body, type, priority, queue, language
        FROM tickets`

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, pgSelectTickets+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanPgTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := scanPgTicket(r.pool.QueryRow(ctx, pgSelectTickets+` WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	return ticket, err
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (subject, body, type, priority, queue, language)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		nullable(ticket.Status),
		nullable(ticket.Priority),
		nullable(ticket.Queue),
		nullable(ticket.Language),
	).Scan(&ticket.ID)
}

func (r *ticketRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count)
	return count, err
}

func scanPgTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket                                                domain.Ticket
		title, description, status, priority, queue, language *string
	)
	if err := row.Scan(&ticket.ID, &title, &description, &status, &priority, &queue, &language); err != nil {
		return nil, err
	}
	ticket.Title = deref(title)
	ticket.Description = deref(description)
	ticket.Status = deref(status)
	ticket.Priority = deref(priority)
	ticket.Queue = deref(queue)
	ticket.Language = deref(language)
	return &ticket, nil
}

func deref(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}

// nullable stores empty optional fields as NULL, matching rows imported from
// the dataset.
func nullable(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}
