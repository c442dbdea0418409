package models

import "time"

// FieldChange mirrors one entry of the jsonb changes column.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
}

// HistoryRecord is the database shape of one audit event. Rows are
// insert-only; nothing in the system updates or deletes them.
type HistoryRecord struct {
	HistoryID  string        `db:"history_id"`
	Seq        int64         `db:"seq"`
	EntityType string        `db:"entity_type"`
	EntityID   string        `db:"entity_id"`
	Action     string        `db:"action"`
	ActorID    string        `db:"actor_id"`
	Changes    []FieldChange `db:"changes"`
	CreatedAt  time.Time     `db:"created_at"`
}
