package domain

import "time"

// CarrierStatus gates whether a carrier may be dispatched on new loads.
type CarrierStatus string

const (
	CarrierStatusActive      CarrierStatus = "active"
	CarrierStatusInactive    CarrierStatus = "inactive"
	CarrierStatusBlacklisted CarrierStatus = "blacklisted"
)

// Carrier is a trucking company loads are dispatched to.
// MCNumber is unique across carriers and normalized to upper case.
type Carrier struct {
	CarrierID       string        `json:"id"`
	CompanyName     string        `json:"companyName"`
	MCNumber        string        `json:"mcNumber"`
	DOTNumber       string        `json:"dotNumber,omitempty"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Address         Address       `json:"address"`
	EquipmentTypes  []string      `json:"equipmentTypes,omitempty"`
	InsuranceExpiry *time.Time    `json:"insuranceExpiryDate,omitempty"`
	Status          CarrierStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	AuditFields
	SoftDeleteFields
}
