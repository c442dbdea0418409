package domain

import "time"

// HistoryAction is the kind of mutation a history record describes.
type HistoryAction string

const (
	ActionCreated       HistoryAction = "created"
	ActionUpdated       HistoryAction = "updated"
	ActionDeleted       HistoryAction = "deleted"
	ActionStatusUpdated HistoryAction = "status_updated"
)

// EntityType names the kind of record a history entry targets.
type EntityType string

const (
	EntityLoad       EntityType = "load"
	EntityCustomer   EntityType = "customer"
	EntityCarrier    EntityType = "carrier"
	EntityUser       EntityType = "user"
	EntityReceivable EntityType = "payment_receivable"
	EntityPayable    EntityType = "payment_payable"
)

// FieldChange is one field-level difference recorded in an audit entry.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
}

// HistoryRecord is an immutable audit entry for one mutation on one entity.
// A created or deleted record carries no field changes; an updated or
// status_updated record is only persisted when at least one real change
// exists.
type HistoryRecord struct {
	HistoryID  string        `json:"id"`
	EntityType EntityType    `json:"entityType"`
	EntityID   string        `json:"entityId"`
	Action     HistoryAction `json:"action"`
	ActorID    string        `json:"actorId"`
	Changes    []FieldChange `json:"changes"`
	CreatedAt  time.Time     `json:"createdAt"`
}
