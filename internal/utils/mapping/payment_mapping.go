package mapping

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
)

// ToDomainReceivable converts a scanned receivable row to the domain shape.
func ToDomainReceivable(m models.PaymentReceivable) domain.PaymentReceivable {
	return domain.PaymentReceivable{
		ReceivableID:     m.ReceivableID,
		LoadID:           m.LoadID,
		CustomerID:       m.CustomerID,
		Amount:           m.Amount,
		InvoiceNumber:    m.InvoiceNumber,
		DueDate:          m.DueDate,
		Status:           domain.ReceivableStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainPayable converts a scanned payable row to the domain shape.
func ToDomainPayable(m models.PaymentPayable) domain.PaymentPayable {
	return domain.PaymentPayable{
		PayableID:        m.PayableID,
		LoadID:           m.LoadID,
		CarrierID:        m.CarrierID,
		Amount:           m.Amount,
		ScheduledDate:    m.ScheduledDate,
		Status:           domain.PayableStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}
