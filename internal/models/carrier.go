package models

import "time"

// Carrier is the database shape of a trucking company.
type Carrier struct {
	CarrierID       string     `db:"carrier_id"`
	Seq             int64      `db:"seq"`
	CompanyName     string     `db:"company_name"`
	MCNumber        string     `db:"mc_number"`
	DOTNumber       string     `db:"dot_number"`
	Email           string     `db:"email"`
	Phone           string     `db:"phone"`
	Address         Address    `db:"address"`
	EquipmentTypes  []string   `db:"equipment_types"`
	InsuranceExpiry *time.Time `db:"insurance_expiry_date"`
	Status          string     `db:"status"`
	Notes           string     `db:"notes"`
	AuditFields
	SoftDeleteFields
}
