package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoadStatus is the lifecycle state of a load.
type LoadStatus string

const (
	LoadStatusListed     LoadStatus = "listed"
	LoadStatusDispatched LoadStatus = "dispatched"
	LoadStatusInTransit  LoadStatus = "in_transit"
	LoadStatusDelivered  LoadStatus = "delivered"
	LoadStatusCompleted  LoadStatus = "completed"
	LoadStatusCancelled  LoadStatus = "cancelled"
)

// Load is a brokered shipment. CustomerID is required from listing;
// CarrierID stays empty until the load is dispatched.
type Load struct {
	LoadID        string          `json:"id"`
	RefNumber     string          `json:"refNumber"`
	Status        LoadStatus      `json:"status"`
	CustomerID    string          `json:"customerId"`
	CarrierID     string          `json:"carrierId,omitempty"`
	Origin        Address         `json:"origin"`
	Destination   Address         `json:"destination"`
	PickupDate    *time.Time      `json:"pickupDate,omitempty"`
	DeliveryDate  *time.Time      `json:"deliveryDate,omitempty"`
	Rate          decimal.Decimal `json:"rate"`        // what the customer pays
	CarrierRate   decimal.Decimal `json:"carrierRate"` // what the carrier is paid
	EquipmentType string          `json:"equipmentType,omitempty"`
	WeightLbs     float64         `json:"weightLbs,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	DocumentURLs  []string        `json:"documentUrls,omitempty"`
	AuditFields
	SoftDeleteFields
}

// Margin is the spread between the customer rate and the carrier rate.
func (l Load) Margin() decimal.Decimal {
	return l.Rate.Sub(l.CarrierRate)
}
