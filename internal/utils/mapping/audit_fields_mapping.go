package mapping

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
)

// ToDomainAuditFields converts model audit columns to the domain shape.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToDomainSoftDeleteFields converts model soft-delete columns to the domain shape.
func ToDomainSoftDeleteFields(m models.SoftDeleteFields) domain.SoftDeleteFields {
	return domain.SoftDeleteFields{
		DeletedAt: m.DeletedAt,
		DeletedBy: m.DeletedBy,
	}
}

// ToDomainAddress converts a stored jsonb address to the domain shape.
func ToDomainAddress(m models.Address) domain.Address {
	return domain.Address{
		Street: m.Street,
		City:   m.City,
		State:  m.State,
		Zip:    m.Zip,
	}
}
