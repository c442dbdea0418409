package dto

import (
	"strconv"
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// Pagination is the envelope-level paging block returned beside the items
// of List and Search responses.
type Pagination struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// StatsResult reports how many entities were created in a resolved window.
type StatsResult struct {
	Period    string    `json:"period"`
	Total     int64     `json:"total"`
	DateRange DateRange `json:"dateRange"`
}

// DateRange is the resolved window of a stats query.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// BulkRequest is the body of bulk-update and bulk-delete operations.
type BulkRequest struct {
	IDs  []string       `json:"ids"`
	Data map[string]any `json:"data,omitempty"`
}

// BulkResult reports how many records a bulk operation actually touched.
type BulkResult struct {
	Modified int64 `json:"modified"`
}

// AddressDTO carries the structured zip plus the legacy numeric zipCode
// alias; both are populated when the zip parses as a number.
type AddressDTO struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	ZipCode *int   `json:"zipCode,omitempty"`
}

// ToAddressDTO formats an address, keeping the legacy zipCode alias alive.
func ToAddressDTO(a domain.Address) AddressDTO {
	out := AddressDTO{
		Street: a.Street,
		City:   a.City,
		State:  a.State,
		Zip:    a.Zip,
	}
	if n, err := strconv.Atoi(a.Zip); err == nil {
		out.ZipCode = &n
	}
	return out
}

func timePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
