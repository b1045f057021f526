package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

// ErrSessionStarted is returned by Load once a load has been attempted.
var ErrSessionStarted = errors.New("session already started")

// Loader fetches the full ticket collection.
type Loader interface {
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
}

// State is the lifecycle stage of a Session.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session loads the ticket collection once and owns the Engine built from
// it. A failed load is terminal.
type Session struct {
	loader Loader
	opts   []Option
	state  State
	err    error
	engine *Engine
}

func NewSession(loader Loader, opts ...Option) *Session {
	return &Session{loader: loader, opts: opts}
}

// Load performs the single fetch. It returns ErrSessionStarted when called
// more than once.
func (s *Session) Load(ctx context.Context) error {
	if s.state != StateUninitialized {
		return ErrSessionStarted
	}
	s.state = StateLoading
	tickets, err := s.loader.ListTickets(ctx)
	if err != nil {
		s.state = StateFailed
		s.err = fmt.Errorf("load tickets: %w", err)
		return s.err
	}
	s.engine = NewEngine(tickets, s.opts...)
	s.state = StateLoaded
	return nil
}

func (s *Session) State() State {
	return s.state
}

// Err is the load failure, or nil.
func (s *Session) Err() error {
	return s.err
}

// Engine is nil unless the session is loaded.
func (s *Session) Engine() *Engine {
	return s.engine
}
