package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

type sqliteTicketRepository struct {
	db *sql.DB
}

// NewSQLiteTicketRepository instantiates the SQLite-backed repository.
func NewSQLiteTicketRepository(db *sql.DB) TicketRepository {
	return &sqliteTicketRepository{db: db}
}

const sqliteSelectTickets = `
        SELECT rowid AS id, subject AS title, body AS description, type AS status, priority, queue, language
        FROM tickets`

func (r *sqliteTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.QueryContext(ctx, sqliteSelectTickets+` ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("ticket store: list: %w", err)
	}
	defer rows.Close()

	result := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanSQLiteTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("ticket store: list scan: %w", err)
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *sqliteTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := scanSQLiteTicket(r.db.QueryRowContext(ctx, sqliteSelectTickets+` WHERE rowid = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("ticket store: get: %w", err)
	}
	return ticket, nil
}

func (r *sqliteTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (subject, body, type, priority, queue, language) VALUES (?, ?, ?, ?, ?, ?)`,
		ticket.Title,
		ticket.Description,
		nullable(ticket.Status),
		nullable(ticket.Priority),
		nullable(ticket.Queue),
		nullable(ticket.Language),
	)
	if err != nil {
		return fmt.Errorf("ticket store: create: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("ticket store: create: %w", err)
	}
	ticket.ID = id
	return nil
}

func (r *sqliteTicketRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("ticket store: count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteTicket(row rowScanner) (*domain.Ticket, error) {
	var (
		ticket                                                domain.Ticket
		title, description, status, priority, queue, language sql.NullString
	)
	if err := row.Scan(&ticket.ID, &title, &description, &status, &priority, &queue, &language); err != nil {
		return nil, err
	}
	ticket.Title = title.String
	ticket.Description = description.String
	ticket.Status = status.String
	ticket.Priority = priority.String
	ticket.Queue = queue.String
	ticket.Language = language.String
	return &ticket, nil
}
