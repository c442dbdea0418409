package services

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// HistorySvcFacade defines read access to audit trails. Writing audit
// records is internal to the record services and never exposed over HTTP.
type HistorySvcFacade interface {
	// GetEntityHistory retrieves one record's audit trail, newest first.
	GetEntityHistory(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.HistoryRecord, int64, error)

	// ResolveActors batch-fetches the users referenced by a set of audit
	// records. Unknown actors are simply absent from the result.
	ResolveActors(ctx context.Context, records []domain.HistoryRecord) (map[string]domain.User, error)
}
