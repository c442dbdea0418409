package repositories

import (
	"context"
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// EntityReader defines read operations shared by every record type.
type EntityReader[T any] interface {
	// Find retrieves a page of records matching the descriptor together with
	// the total count before pagination. Soft-deleted records are excluded
	// unless includeDeleted is set.
	Find(ctx context.Context, q domain.QueryDescriptor, includeDeleted bool) ([]T, int64, error)

	// FindByID retrieves a single live record by its ID.
	FindByID(ctx context.Context, id string) (*T, error)

	// ExistsWhere reports whether any live record has the given field value,
	// ignoring the record with excludeID when non-empty.
	ExistsWhere(ctx context.Context, field string, value any, excludeID string) (bool, error)

	// CountCreatedBetween counts live records created inside [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// EntityWriter defines write operations shared by every record type.
// Field maps are keyed by wire field names and pass through a per-table
// column whitelist before touching SQL.
type EntityWriter[T any] interface {
	// Insert persists a new record and returns it as stored.
	Insert(ctx context.Context, fields map[string]any) (*T, error)

	// UpdateFields applies a partial update and reports the number of rows
	// actually modified.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (int64, error)

	// SoftDelete marks a record as deleted without removing the row.
	SoftDelete(ctx context.Context, id string, deletedAt time.Time, deletedBy string) error

	// HardDelete removes the row permanently.
	HardDelete(ctx context.Context, id string) error
}

// EntityRepositoryFacade combines the read and write halves for one record type.
type EntityRepositoryFacade[T any] interface {
	EntityReader[T]
	EntityWriter[T]
}
