package view

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

type loaderFunc func(ctx context.Context) ([]domain.Ticket, error)

func (f loaderFunc) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return f(ctx)
}

func TestSessionLoad(t *testing.T) {
	calls := 0
	session := NewSession(loaderFunc(func(context.Context) ([]domain.Ticket, error) {
		calls++
		return scenarioTickets(), nil
	}), WithPageSize(10))

	if session.State() != StateUninitialized || session.Engine() != nil {
		t.Fatalf("unexpected initial session: %v", session.State())
	}
	if err := session.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if session.State() != StateLoaded {
		t.Fatalf("expected loaded, got %v", session.State())
	}
	if session.Engine().View().PageSize != 10 || session.Engine().Len() != 3 {
		t.Fatalf("engine not built from options: %+v", session.Engine().View())
	}
	if err := session.Load(context.Background()); !errors.Is(err, ErrSessionStarted) {
		t.Fatalf("expected ErrSessionStarted, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected single fetch, got %d", calls)
	}
}

func TestSessionLoadFailureIsTerminal(t *testing.T) {
	boom := errors.New("connection refused")
	session := NewSession(loaderFunc(func(context.Context) ([]domain.Ticket, error) {
		return []domain.Ticket{{ID: 1}}, boom
	}))

	if err := session.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if session.State() != StateFailed || !errors.Is(session.Err(), boom) {
		t.Fatalf("expected failed state, got %v / %v", session.State(), session.Err())
	}
	if session.Engine() != nil {
		t.Fatalf("failed session must not expose partial data")
	}
	if err := session.Load(context.Background()); !errors.Is(err, ErrSessionStarted) {
		t.Fatalf("expected ErrSessionStarted after failure, got %v", err)
	}
}
