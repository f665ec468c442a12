package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/grants-import/app/database"
	"github.com/lysyi3m/grants-import/app/grants"
	"github.com/lysyi3m/grants-import/app/source"
)

type Result struct {
	Found     int
	Processed int
	PersistResult
}

type ImportGrantsTask struct {
	Task
	acquirer    source.Acquirer
	transformer *grants.Transformer
	repo        database.GrantRepository
}

func NewImportGrantsTask(acquirer source.Acquirer, transformer *grants.Transformer, repo database.GrantRepository) *ImportGrantsTask {
	return &ImportGrantsTask{
		Task:        NewTask(TaskTypeImportGrants, acquirer.Describe()),
		acquirer:    acquirer,
		transformer: transformer,
		repo:        repo,
	}
}

// Execute runs one import: acquire, transform, persist. Acquisition and
// parse failures end the run before any insert is attempted.
func (t *ImportGrantsTask) Execute(ctx context.Context) (*Result, error) {
	t.Start()
	logger := slog.With("task_id", t.GetID())

	logger.Info("Task started", "type", t.GetType(), "source", t.GetSource())

	data, err := t.acquirer.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire grants extract: %w", err)
	}

	found, items, err := t.transformer.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to transform grants extract: %w", err)
	}

	logger.Info("Found grants", "found", found, "processing", len(items))

	persisted := NewPersister(t.repo, logger).Run(ctx, items)

	result := &Result{
		Found:         found,
		Processed:     len(items),
		PersistResult: persisted,
	}

	logger.Info("Task completed",
		"type", t.GetType(),
		"source", t.GetSource(),
		"duration", t.GetDuration(),
		"found", result.Found,
		"processed", result.Processed,
		"inserted", result.Inserted,
		"failed", result.Failed)

	return result, nil
}
