package services

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/dto"
)

// RecordReaderSvc defines the read half of the generic record contract.
type RecordReaderSvc[T any] interface {
	// ListRecords retrieves a page of records matching the descriptor plus
	// the total count before pagination.
	ListRecords(ctx context.Context, q domain.QueryDescriptor) ([]T, int64, error)

	// SearchRecords behaves like ListRecords but requires a search term.
	SearchRecords(ctx context.Context, q domain.QueryDescriptor) ([]T, int64, error)

	// GetRecordByID retrieves a single live record.
	GetRecordByID(ctx context.Context, id string) (*T, error)

	// RecordStats counts records created inside the named period
	// (today, week, month, year, or all).
	RecordStats(ctx context.Context, period string) (*dto.StatsResult, error)
}

// RecordWriterSvc defines the write half of the generic record contract.
// Field maps are keyed by wire field names; every write validates against
// the entity's rule set and emits a best-effort audit record.
type RecordWriterSvc[T any] interface {
	// CreateRecord validates and persists a new record.
	CreateRecord(ctx context.Context, fields map[string]any, actorID string) (*T, error)

	// UpdateRecord applies a partial update, recording only the fields whose
	// values actually changed. The boolean reports whether anything was
	// written; false means the record was returned unmodified.
	UpdateRecord(ctx context.Context, id string, fields map[string]any, actorID string) (*T, bool, error)

	// DeleteRecord removes a record, softly when the entity supports it.
	DeleteRecord(ctx context.Context, id string, actorID string) error

	// BulkUpdateRecords applies the same partial update to many records and
	// reports how many were modified.
	BulkUpdateRecords(ctx context.Context, ids []string, fields map[string]any, actorID string) (int64, error)

	// BulkDeleteRecords removes many records and reports how many were
	// modified.
	BulkDeleteRecords(ctx context.Context, ids []string, actorID string) (int64, error)
}

// RecordSvcFacade combines the generic record interfaces for one entity.
type RecordSvcFacade[T any] interface {
	RecordReaderSvc[T]
	RecordWriterSvc[T]
}
