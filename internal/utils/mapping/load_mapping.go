package mapping

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
)

// ToDomainLoad converts a scanned load row to the domain shape.
func ToDomainLoad(m models.Load) domain.Load {
	return domain.Load{
		LoadID:           m.LoadID,
		RefNumber:        m.RefNumber,
		Status:           domain.LoadStatus(m.Status),
		CustomerID:       m.CustomerID,
		CarrierID:        m.CarrierID,
		Origin:           ToDomainAddress(m.Origin),
		Destination:      ToDomainAddress(m.Destination),
		PickupDate:       m.PickupDate,
		DeliveryDate:     m.DeliveryDate,
		Rate:             m.Rate,
		CarrierRate:      m.CarrierRate,
		EquipmentType:    m.EquipmentType,
		WeightLbs:        m.WeightLbs,
		Notes:            m.Notes,
		DocumentURLs:     m.DocumentURLs,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}
