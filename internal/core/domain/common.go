package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// SoftDeleteFields marks an entity as deleted without removing the row.
type SoftDeleteFields struct {
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
	DeletedBy string     `json:"deletedBy,omitempty"` // UserID reference
}

// IsDeleted reports whether the soft-delete marker is set.
func (s SoftDeleteFields) IsDeleted() bool {
	return s.DeletedAt != nil
}

// Address is a postal address embedded in loads, customers and carriers.
// Zip is the structured field; legacy callers still read the numeric
// zipCode alias, which the DTO layer populates from Zip when possible.
type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}
