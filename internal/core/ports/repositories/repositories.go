package repositories

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LoadRepo       EntityRepositoryFacade[domain.Load]
	CustomerRepo   EntityRepositoryFacade[domain.Customer]
	CarrierRepo    EntityRepositoryFacade[domain.Carrier]
	UserRepo       UserRepositoryFacade
	ReceivableRepo EntityRepositoryFacade[domain.PaymentReceivable]
	PayableRepo    EntityRepositoryFacade[domain.PaymentPayable]
	HistoryRepo    HistoryRepositoryFacade
}
