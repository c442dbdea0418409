package mapping

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/freightops/freight_broker_app/internal/models"
)

// ToModelHistoryRecord converts an audit entry to its insert-only row shape.
func ToModelHistoryRecord(d domain.HistoryRecord) models.HistoryRecord {
	changes := make([]models.FieldChange, len(d.Changes))
	for i, c := range d.Changes {
		changes[i] = models.FieldChange{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue}
	}
	return models.HistoryRecord{
		HistoryID:  d.HistoryID,
		EntityType: string(d.EntityType),
		EntityID:   d.EntityID,
		Action:     string(d.Action),
		ActorID:    d.ActorID,
		Changes:    changes,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainHistoryRecord converts a scanned history row to the domain shape.
func ToDomainHistoryRecord(m models.HistoryRecord) domain.HistoryRecord {
	changes := make([]domain.FieldChange, len(m.Changes))
	for i, c := range m.Changes {
		changes[i] = domain.FieldChange{Field: c.Field, OldValue: c.OldValue, NewValue: c.NewValue}
	}
	return domain.HistoryRecord{
		HistoryID:  m.HistoryID,
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		Action:     domain.HistoryAction(m.Action),
		ActorID:    m.ActorID,
		Changes:    changes,
		CreatedAt:  m.CreatedAt,
	}
}
