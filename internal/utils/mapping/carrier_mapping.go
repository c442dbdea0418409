package mapping

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
)

// ToDomainCarrier converts a scanned carrier row to the domain shape.
func ToDomainCarrier(m models.Carrier) domain.Carrier {
	return domain.Carrier{
		CarrierID:        m.CarrierID,
		CompanyName:      m.CompanyName,
		MCNumber:         m.MCNumber,
		DOTNumber:        m.DOTNumber,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          ToDomainAddress(m.Address),
		EquipmentTypes:   m.EquipmentTypes,
		InsuranceExpiry:  m.InsuranceExpiry,
		Status:           domain.CarrierStatus(m.Status),
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}
