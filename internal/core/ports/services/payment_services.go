package services

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// ReceivableRelations carries the joined records needed to format
// receivable responses.
type ReceivableRelations struct {
	Loads     map[string]domain.Load
	Customers map[string]domain.Customer
}

// PayableRelations carries the joined records needed to format payable
// responses.
type PayableRelations struct {
	Loads    map[string]domain.Load
	Carriers map[string]domain.Carrier
}

// ReceivableSvcFacade combines the generic record contract with the joins
// receivable responses need.
type ReceivableSvcFacade interface {
	RecordSvcFacade[domain.PaymentReceivable]

	// ResolveReceivableRelations batch-fetches the loads and customers
	// referenced by a set of receivables.
	ResolveReceivableRelations(ctx context.Context, records []domain.PaymentReceivable) (*ReceivableRelations, error)

	// MarkOverdueReceivables flips pending or invoiced receivables whose due
	// date has passed to overdue and reports how many changed.
	MarkOverdueReceivables(ctx context.Context) (int64, error)
}

// PayableSvcFacade combines the generic record contract with the joins
// payable responses need.
type PayableSvcFacade interface {
	RecordSvcFacade[domain.PaymentPayable]

	// ResolvePayableRelations batch-fetches the loads and carriers
	// referenced by a set of payables.
	ResolvePayableRelations(ctx context.Context, records []domain.PaymentPayable) (*PayableRelations, error)
}
