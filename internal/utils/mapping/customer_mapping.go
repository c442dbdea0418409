package mapping

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
)

// ToDomainCustomer converts a scanned customer row to the domain shape.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:       m.CustomerID,
		CompanyName:      m.CompanyName,
		ContactName:      m.ContactName,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          ToDomainAddress(m.Address),
		MCNumber:         m.MCNumber,
		CreditLimit:      m.CreditLimit,
		Status:           domain.CustomerStatus(m.Status),
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}
