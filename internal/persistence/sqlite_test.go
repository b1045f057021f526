package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-browser/internal/config"
	"github.com/spec-kit/ticket-browser/internal/repository"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tickets.db")
	db, err := NewSQLite(context.Background(), config.SQLiteConfig{Path: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)

	if err := RunSQLiteMigrations(ctx, db.Handle(), zap.NewNop()); err != nil {
		t.Fatalf("first migration run: %v", err)
	}
	if err := RunSQLiteMigrations(ctx, db.Handle(), zap.NewNop()); err != nil {
		t.Fatalf("second migration run: %v", err)
	}

	var versions int
	if err := db.DB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&versions); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	migrations, err := loadMigrations("sqlite")
	if err != nil {
		t.Fatalf("load migrations: %v", err)
	}
	if versions != len(migrations) {
		t.Errorf("expected %d recorded versions, got %d", len(migrations), versions)
	}
}

func TestLoadMigrationsBothDialects(t *testing.T) {
	for _, dialect := range []string{"sqlite", "postgres"} {
		migrations, err := loadMigrations(dialect)
		if err != nil {
			t.Fatalf("%s: %v", dialect, err)
		}
		if len(migrations) == 0 {
			t.Fatalf("%s: expected at least one migration", dialect)
		}
		if migrations[0].name != "0001_create_tickets.sql" {
			t.Errorf("%s: unexpected first migration %q", dialect, migrations[0].name)
		}
	}
}

func TestSeedSampleTicketsOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLite(t)
	if err := RunSQLiteMigrations(ctx, db.Handle(), zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := repository.NewSQLiteTicketRepository(db.Handle())

	if err := SeedSampleTickets(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedSampleTickets(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(SampleTickets) {
		t.Errorf("expected %d tickets, got %d", len(SampleTickets), count)
	}
}

func TestPingWithoutHandle(t *testing.T) {
	var s *SQLite
	if err := s.Ping(context.Background()); err == nil {
		t.Errorf("expected error pinging nil sqlite")
	}
	var r *Redis
	if err := r.Ping(context.Background()); err == nil {
		t.Errorf("expected error pinging nil redis")
	}
	if NewTicketCache(nil, 0) != nil {
		t.Errorf("expected nil cache without redis")
	}
}
