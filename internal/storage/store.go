package storage

import (
	"context"

	"github.com/katalvlaran/ringsom/internal/model"
)

// Store defines persistence operations for solve runs.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.Run) error
	GetRun(ctx context.Context, id string) (model.Run, bool, error)
	// ListRuns returns at most limit runs, newest first. limit <= 0 means all.
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)
}
