package tasks

import (
	"context"
	"log/slog"

	"github.com/lysyi3m/grants-import/app/database"
	"github.com/lysyi3m/grants-import/app/grants"
)

type PersistResult struct {
	Attempted int
	Inserted  int
	Failed    int
}

// Persister writes grants one at a time. A failed insert is logged and the
// loop moves on; nothing is retried.
type Persister struct {
	repo   database.GrantRepository
	logger *slog.Logger
}

func NewPersister(repo database.GrantRepository, logger *slog.Logger) *Persister {
	return &Persister{
		repo:   repo,
		logger: logger,
	}
}

func (p *Persister) Run(ctx context.Context, items []grants.Grant) PersistResult {
	var result PersistResult

	for _, grant := range items {
		result.Attempted++

		if err := p.repo.InsertGrant(ctx, grant); err != nil {
			result.Failed++
			p.logger.Error("Failed to insert grant", "title", grant.Title, "error", err)
			continue
		}

		result.Inserted++
		p.logger.Debug("Inserted grant", "title", grant.Title)
	}

	return result
}
