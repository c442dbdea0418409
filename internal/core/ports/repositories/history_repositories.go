package repositories

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// HistoryWriter defines write operations for audit records.
type HistoryWriter interface {
	// SaveHistory persists an audit record. Audit rows are insert-only.
	SaveHistory(ctx context.Context, record domain.HistoryRecord) error
}

// HistoryReader defines read operations for audit records.
type HistoryReader interface {
	// FindHistoryByEntity retrieves the audit trail of one record, newest
	// first, together with the total count.
	FindHistoryByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit, offset int) ([]domain.HistoryRecord, int64, error)
}

// HistoryRepositoryFacade combines all audit-record repository interfaces.
type HistoryRepositoryFacade interface {
	HistoryWriter
	HistoryReader
}
