package services

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// LoadRelations carries the joined records needed to format load responses.
type LoadRelations struct {
	Customers map[string]domain.Customer
	Carriers  map[string]domain.Carrier
}

// LoadStatusSvc defines the status lifecycle operations on loads.
type LoadStatusSvc interface {
	// UpdateLoadStatus validates the transition and applies it, emitting a
	// status_updated audit record.
	UpdateLoadStatus(ctx context.Context, loadID string, status domain.LoadStatus, actorID string) (*domain.Load, error)
}

// LoadExportSvc defines report generation over loads.
type LoadExportSvc interface {
	// ExportLoads renders the loads matching the descriptor as a spreadsheet
	// and returns the file content plus a suggested filename.
	ExportLoads(ctx context.Context, q domain.QueryDescriptor) ([]byte, string, error)
}

// LoadRelationResolver batch-fetches the customers and carriers referenced
// by a set of loads.
type LoadRelationResolver interface {
	ResolveLoadRelations(ctx context.Context, loads []domain.Load) (*LoadRelations, error)
}

// LoadSvcFacade combines all load-related service interfaces.
type LoadSvcFacade interface {
	RecordSvcFacade[domain.Load]
	LoadStatusSvc
	LoadExportSvc
	LoadRelationResolver
}
