// Package client is the HTTP client for the ticket API. The browser uses
// ListTickets once per session to load the full collection.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-browser/internal/api/dto"
	"github.com/spec-kit/ticket-browser/internal/domain"
)

const ticketsPath = "/api/tickets"

// APIError is a non-2xx response from the ticket API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ticket api: status %d", e.Status)
	}
	return fmt.Sprintf("ticket api: status %d: %s", e.Status, e.Message)
}

// Client talks to the ticket API.
type Client struct {
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New builds a client for the API rooted at baseURL, e.g. http://localhost:3001.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateTicketInput is the payload for CreateTicket.
type CreateTicketInput = dto.CreateTicketRequest

// ListTickets loads the full ticket collection.
func (c *Client) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	if err := c.do(ctx, c.prepare(ctx, fiber.Get(c.baseURL+ticketsPath)), fiber.StatusOK, &tickets); err != nil {
		return nil, fmt.Errorf("ticket client: list: %w", err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	c.logger.Debug("loaded tickets", zap.Int("count", len(tickets)))
	return tickets, nil
}

// GetTicket fetches one ticket.
func (c *Client) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	var ticket domain.Ticket
	url := c.baseURL + ticketsPath + "/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, c.prepare(ctx, fiber.Get(url)), fiber.StatusOK, &ticket); err != nil {
		return nil, fmt.Errorf("ticket client: get %d: %w", id, err)
	}
	return &ticket, nil
}

// CreateTicket submits a new ticket and returns the stored record.
func (c *Client) CreateTicket(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error) {
	var ticket domain.Ticket
	agent := c.prepare(ctx, fiber.Post(c.baseURL+ticketsPath)).JSON(input)
	if err := c.do(ctx, agent, fiber.StatusCreated, &ticket); err != nil {
		return nil, fmt.Errorf("ticket client: create: %w", err)
	}
	return &ticket, nil
}

// prepare applies the request timeout, shortened to the context deadline
// when that comes first.
func (c *Client) prepare(ctx context.Context, agent *fiber.Agent) *fiber.Agent {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	return agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
}

func (c *Client) do(ctx context.Context, agent *fiber.Agent, want int, out any) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(agent)
		return err
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if status != want {
		return decodeAPIError(status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}
