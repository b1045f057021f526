package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-browser/internal/domain"
	"github.com/spec-kit/ticket-browser/internal/repository"
)

// SampleTickets is the starter data set inserted into an empty store.
var SampleTickets = []domain.Ticket{
	{Title: "Login issue", Description: "Users cannot log in to the system", Status: "open", Priority: "high", Queue: "Technical Support", Language: "en"},
	{Title: "Slow performance", Description: "Dashboard loads slowly", Status: "in_progress", Priority: "medium", Queue: "Technical Support", Language: "en"},
	{Title: "Feature request", Description: "Add dark mode", Status: "open", Priority: "low", Queue: "Product Support", Language: "en"},
	{Title: "Email notification bug", Description: "Users not receiving email notifications", Status: "open", Priority: "high", Queue: "IT Support", Language: "en"},
	{Title: "UI improvement", Description: "Update button styles", Status: "closed", Priority: "low", Queue: "Product Support", Language: "en"},
}

// SeedSampleTickets inserts SampleTickets when the store holds no tickets.
func SeedSampleTickets(ctx context.Context, repo repository.TicketRepository, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: count: %w", err)
	}
	if count > 0 {
		logger.Debug("store already populated; skipping seed", zap.Int("count", count))
		return nil
	}

	for _, sample := range SampleTickets {
		ticket := sample
		if err := repo.Create(ctx, &ticket); err != nil {
			return fmt.Errorf("seed: create %q: %w", sample.Title, err)
		}
	}
	logger.Info("seeded sample tickets", zap.Int("count", len(SampleTickets)))
	return nil
}
