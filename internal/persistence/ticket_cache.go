package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

const ticketListKey = "tickets:all"

// TicketCache stores the full ticket list as a single JSON value in Redis.
type TicketCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTicketCache returns nil when r is nil so callers can skip caching.
func NewTicketCache(r *Redis, ttl time.Duration) *TicketCache {
	if r == nil || r.Client == nil {
		return nil
	}
	return &TicketCache{client: r.Client, ttl: ttl}
}

// GetList returns the cached list and whether it was present.
func (c *TicketCache) GetList(ctx context.Context) ([]domain.Ticket, bool, error) {
	raw, err := c.client.Get(ctx, ticketListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ticket cache: get: %w", err)
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, false, fmt.Errorf("ticket cache: decode: %w", err)
	}
	return tickets, true, nil
}

// SetList replaces the cached list.
func (c *TicketCache) SetList(ctx context.Context, tickets []domain.Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("ticket cache: encode: %w", err)
	}
	if err := c.client.Set(ctx, ticketListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("ticket cache: set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list.
func (c *TicketCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, ticketListKey).Err(); err != nil {
		return fmt.Errorf("ticket cache: invalidate: %w", err)
	}
	return nil
}
