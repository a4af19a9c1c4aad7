package services

import (
	"context"
	"errors"
	"log/slog"

	"personal-ledger/internal/models"
)

const (
	demoMonths     = 3
	demoEverydayTx = 15
)

type demoSeeder struct {
	ledger    LedgerServiceInterface
	generator TransactionGeneratorInterface
	today     func() models.Date
}

// NewDemoSeeder creates a seeder that writes through the ledger service
func NewDemoSeeder(ledger LedgerServiceInterface, generator TransactionGeneratorInterface) DemoSeederInterface {
	return &demoSeeder{
		ledger:    ledger,
		generator: generator,
		today:     models.Today,
	}
}

// SeedIfEmpty adds a few months of generated history to an empty ledger
func (s *demoSeeder) SeedIfEmpty(ctx context.Context) (int, error) {
	if count := s.ledger.Count(); count > 0 {
		slog.Info("Ledger not empty, skipping demo data", "transactions", count)
		return 0, nil
	}

	end := s.today()
	start := models.Date{Time: end.AddDate(0, -demoMonths, 0)}

	drafts := s.generator.GenerateSalaryDrafts(start, end)
	drafts = append(drafts, s.generator.GenerateBillDrafts(start, end)...)
	drafts = append(drafts, s.generator.GenerateDrafts(start, end, demoEverydayTx)...)

	added := 0
	for _, draft := range drafts {
		if err := ctx.Err(); err != nil {
			return added, err
		}

		if _, err := s.ledger.Add(draft); err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				slog.Warn("Generated draft rejected", "field", verr.Field, "description", draft.Description)
				continue
			}
			if errors.Is(err, ErrNotPersisted) {
				added++
			}
			return added, err
		}
		added++
	}

	slog.Info("Demo data seeded", "transactions", added)
	return added, nil
}
