package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Load is the database shape of a brokered shipment. Seq is a bigserial
// used only as a deterministic tie-breaker when sort keys collide.
type Load struct {
	LoadID        string          `db:"load_id"`
	Seq           int64           `db:"seq"`
	RefNumber     string          `db:"ref_number"`
	Status        string          `db:"status"`
	CustomerID    string          `db:"customer_id"`
	CarrierID     string          `db:"carrier_id"`
	Origin        Address         `db:"origin"`
	Destination   Address         `db:"destination"`
	PickupDate    *time.Time      `db:"pickup_date"`
	DeliveryDate  *time.Time      `db:"delivery_date"`
	Rate          decimal.Decimal `db:"rate"`
	CarrierRate   decimal.Decimal `db:"carrier_rate"`
	EquipmentType string          `db:"equipment_type"`
	WeightLbs     float64         `db:"weight_lbs"`
	Notes         string          `db:"notes"`
	DocumentURLs  []string        `db:"document_urls"`
	AuditFields
	SoftDeleteFields
}
