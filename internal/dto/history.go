package dto

import (
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// HistoryResponse is the wire view of one audit entry.
type HistoryResponse struct {
	ID         string               `json:"id"`
	EntityType string               `json:"entityType"`
	EntityID   string               `json:"entityId"`
	Action     string               `json:"action"`
	Actor      *UserSummary         `json:"actor"`
	ActorID    string               `json:"actorId"`
	Changes    []domain.FieldChange `json:"changes"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// HistoryPage is the offset-paginated audit trail envelope.
type HistoryPage struct {
	Items  []HistoryResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ToHistoryResponse formats an audit entry; a nil actor yields an explicit
// null and the changes list is never absent.
func ToHistoryResponse(h domain.HistoryRecord, actor *domain.User) HistoryResponse {
	resp := HistoryResponse{
		ID:         h.HistoryID,
		EntityType: string(h.EntityType),
		EntityID:   h.EntityID,
		Action:     string(h.Action),
		ActorID:    h.ActorID,
		Changes:    h.Changes,
		CreatedAt:  h.CreatedAt,
	}
	if resp.Changes == nil {
		resp.Changes = []domain.FieldChange{}
	}
	if actor != nil {
		s := ToUserSummary(*actor)
		resp.Actor = &s
	}
	return resp
}
