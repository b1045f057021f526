package observability

import (
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/tickets", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/tickets", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/tickets/:id", "GET", "NOT_FOUND")

	snap := m.Snapshot()
	if got := snap.Requests["/api/tickets|GET|200"]; got != 2 {
		t.Errorf("expected 2 requests, got %d", got)
	}
	if got := snap.AvgLatencyMillis["/api/tickets|GET|200"]; got != 20 {
		t.Errorf("expected 20ms average, got %d", got)
	}
	if got := snap.Errors["/api/tickets/:id|GET|NOT_FOUND"]; got != 1 {
		t.Errorf("expected 1 error, got %d", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	if snap := m.Snapshot(); len(snap.Requests) != 0 {
		t.Errorf("expected empty snapshot")
	}
}
