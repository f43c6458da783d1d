package store

import (
	"context"

	"github.com/mealtrack/mealtrack-server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Meals() Meals

	// Ping verifies connectivity for health probes.
	Ping(ctx context.Context) error
}

// Meals is the CRUD contract for meal records. Per-record atomicity is the
// driver's responsibility; no operation spans more than one statement.
type Meals interface {
	// ListByOwner returns every meal owned by ownerID in store-native order.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Meal, error)

	// GetByIDAndOwner returns the meal matching both id and owner, or
	// model.ErrNotFound when no such row exists.
	GetByIDAndOwner(ctx context.Context, id int64, ownerID string) (*model.Meal, error)

	// ExistsByIDAndOwner reports whether a meal matching both id and owner exists.
	ExistsByIDAndOwner(ctx context.Context, id int64, ownerID string) (bool, error)

	// Save inserts m when its ID is zero, assigning a fresh id, and
	// replaces the row keyed by m.ID otherwise. Returns the persisted row.
	Save(ctx context.Context, m *model.Meal) (*model.Meal, error)

	// Delete removes the row matching m's id and owner, or returns
	// model.ErrNotFound if it is already gone.
	Delete(ctx context.Context, m *model.Meal) error
}
