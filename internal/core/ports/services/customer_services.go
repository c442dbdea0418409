package services

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// CustomerSvcFacade is the generic record contract applied to customers.
type CustomerSvcFacade interface {
	RecordSvcFacade[domain.Customer]
}

// CarrierSvcFacade is the generic record contract applied to carriers.
// Carrier creation normalizes the MC number before the uniqueness check.
type CarrierSvcFacade interface {
	RecordSvcFacade[domain.Carrier]
}
