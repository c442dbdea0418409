package domain

import (
	"encoding/json"
	"fmt"
)

// FilterOp is a comparison operator inside a query condition.
type FilterOp string

const (
	OpEq       FilterOp = "eq"
	OpIn       FilterOp = "in"
	OpGte      FilterOp = "gte"
	OpLte      FilterOp = "lte"
	OpContains FilterOp = "contains"
)

// Condition is a single typed filter clause on an entity field.
// Field uses the entity's wire (JSON) field name; the storage layer maps
// it to a column through a whitelist and silently drops unknown fields.
type Condition struct {
	Field string   `json:"field"`
	Op    FilterOp `json:"op"`
	Value any      `json:"value"`
}

// QueryDescriptor is the request-scoped, parsed form of list/search
// parameters. It is built once by the query builder and handed to the
// storage layer; it is never persisted.
type QueryDescriptor struct {
	Conditions   []Condition `json:"conditions,omitempty"`
	Search       string      `json:"search,omitempty"`
	SearchFields []string    `json:"searchFields,omitempty"`
	SortBy       string      `json:"sortBy"`
	SortDesc     bool        `json:"sortDesc"`
	Page         int         `json:"page"`
	Limit        int         `json:"limit"`
}

// Offset converts page/limit into a row offset.
func (q QueryDescriptor) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// CacheKey returns a deterministic key for response caching. Two requests
// that resolve to the same descriptor share a cache entry.
func (q QueryDescriptor) CacheKey(entity string) string {
	b, err := json.Marshal(q)
	if err != nil {
		// Marshalling a plain value object cannot realistically fail;
		// fall back to an uncacheable key.
		return fmt.Sprintf("%s:uncacheable:%p", entity, &q)
	}
	return entity + ":" + string(b)
}
