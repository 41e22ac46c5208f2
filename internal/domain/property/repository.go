package property

import (
	"context"

	"github.com/mallhub/backend/internal/domain/shared"
)

// AccountRepository defines the interface for account persistence.
// Every method runs in its own transaction.
type AccountRepository interface {
	// Create inserts an account and returns it with the assigned ID
	Create(ctx context.Context, input NewAccount) (*Account, error)

	// BulkCreate inserts all accounts atomically
	BulkCreate(ctx context.Context, inputs []NewAccount) error

	// GetList returns one page of accounts ordered by ID, with their malls loaded
	GetList(ctx context.Context, page, perPage int) (*shared.Paginated[Account], error)

	// Update applies a partial update and reports whether a row was changed
	Update(ctx context.Context, id uint, update AccountUpdate) (bool, error)

	// Delete removes an account with its malls and units, and reports whether a row was removed
	Delete(ctx context.Context, id uint) (bool, error)

	// Get finds an account by ID with its malls loaded
	Get(ctx context.Context, id uint) (*Account, error)
}

// MallRepository defines the interface for mall persistence.
// Every method runs in its own transaction.
type MallRepository interface {
	// Create inserts a mall and returns it with the assigned ID
	Create(ctx context.Context, input NewMall) (*Mall, error)

	// BulkCreate inserts all malls atomically
	BulkCreate(ctx context.Context, inputs []NewMall) error

	// GetList returns one page of malls ordered by ID, with their account loaded
	GetList(ctx context.Context, page, perPage int) (*shared.Paginated[Mall], error)

	// Update applies a partial update and reports whether a row was changed
	Update(ctx context.Context, id uint, update MallUpdate) (bool, error)

	// Delete removes a mall with its units, and reports whether a row was removed
	Delete(ctx context.Context, id uint) (bool, error)

	// Get finds a mall by ID with its units loaded
	Get(ctx context.Context, id uint) (*Mall, error)
}

// UnitRepository defines the interface for unit persistence.
// Every method runs in its own transaction.
type UnitRepository interface {
	// Create inserts a unit and returns it with the assigned ID
	Create(ctx context.Context, input NewUnit) (*Unit, error)

	// BulkCreate inserts all units atomically
	BulkCreate(ctx context.Context, inputs []NewUnit) error

	// GetList returns one page of units ordered by ID, with their mall loaded
	GetList(ctx context.Context, page, perPage int) (*shared.Paginated[Unit], error)

	// Update applies a partial update and reports whether a row was changed
	Update(ctx context.Context, id uint, update UnitUpdate) (bool, error)

	// Delete removes a unit and reports whether a row was removed
	Delete(ctx context.Context, id uint) (bool, error)

	// Get finds a unit by ID with its mall loaded
	Get(ctx context.Context, id uint) (*Unit, error)
}
