package store

import (
	"context"
	"database/sql"

	"github.com/repset/repset-api/internal/domain"
)

// SetStore defines the interface for set persistence. Sets are ordered
// within their block by set number; keeping that sequence contiguous is
// the use-case layer's job.
type SetStore interface {
	// Create inserts a set and returns it with its assigned ID.
	Create(ctx context.Context, set domain.Set) (domain.Set, error)

	// GetByID retrieves a set by ID, scoped by user.
	// Returns ErrSetNotFound on a miss.
	GetByID(ctx context.Context, id int64, userID string) (domain.Set, error)

	// ListByBlock returns a block's sets ordered by set number.
	ListByBlock(ctx context.Context, exerciseBlockID int64) ([]domain.Set, error)

	// GetByBlockAndReps retrieves one of a block's sets with the given
	// rep count, used by the update-by-reps matching heuristic.
	// Returns ErrSetNotFound on a miss.
	GetByBlockAndReps(ctx context.Context, exerciseBlockID int64, reps int) (domain.Set, error)

	// Update rewrites a set's weight and reps and returns the updated
	// row. Returns ErrSetNotFound on a miss.
	Update(ctx context.Context, id int64, weight float64, reps int) (domain.Set, error)

	// UpdateNumber rewrites a set's position within its block.
	// Returns ErrSetNotFound on a miss.
	UpdateNumber(ctx context.Context, id int64, setNumber int) error

	// Delete removes a set. Returns ErrSetNotFound on a miss.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a SetStore that runs against the given transaction.
	WithTx(tx *sql.Tx) SetStore
}
