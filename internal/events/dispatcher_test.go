package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishInvokesAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("first failed")
	})
	d.Subscribe(EventTicketCreated, func(ctx context.Context, e Event) error {
		calls++
		if e.TicketID != 42 {
			t.Errorf("expected ticket 42, got %d", e.TicketID)
		}
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: 42})
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
	if err == nil || err.Error() != "first failed" {
		t.Fatalf("expected joined handler error, got %v", err)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
