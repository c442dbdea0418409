package dto

import (
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoadRequest is the body accepted by POST /loads. DocumentURL may be
// attached by the upload collaborator before the handler binds the body.
type CreateLoadRequest struct {
	RefNumber     string          `json:"refNumber" binding:"required"`
	CustomerID    string          `json:"customerId" binding:"required"`
	CarrierID     string          `json:"carrierId"`
	Origin        AddressDTO      `json:"origin"`
	Destination   AddressDTO      `json:"destination"`
	PickupDate    *time.Time      `json:"pickupDate"`
	DeliveryDate  *time.Time      `json:"deliveryDate"`
	Rate          decimal.Decimal `json:"rate"`
	CarrierRate   decimal.Decimal `json:"carrierRate"`
	EquipmentType string          `json:"equipmentType"`
	WeightLbs     float64         `json:"weightLbs"`
	Notes         string          `json:"notes"`
	DocumentURL   string          `json:"documentUrl"`
}

// UpdateLoadStatusRequest is the body of PUT /loads/:id/status.
type UpdateLoadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// LoadSummary is the minimal view embedded in other entities' responses.
type LoadSummary struct {
	ID        string `json:"id"`
	RefNumber string `json:"refNumber"`
	Status    string `json:"status"`
}

// LoadResponse is the full single-record view. Customer and Carrier are
// populated only when joined; otherwise callers rely on the bare IDs.
type LoadResponse struct {
	ID            string           `json:"id"`
	RefNumber     string           `json:"refNumber"`
	Status        string           `json:"status"`
	CustomerID    string           `json:"customerId"`
	CarrierID     string           `json:"carrierId,omitempty"`
	Customer      *CustomerSummary `json:"customer"`
	Carrier       *CarrierSummary  `json:"carrier"`
	Origin        AddressDTO       `json:"origin"`
	Destination   AddressDTO       `json:"destination"`
	PickupDate    *time.Time       `json:"pickupDate"`
	DeliveryDate  *time.Time       `json:"deliveryDate"`
	Rate          decimal.Decimal  `json:"rate"`
	CarrierRate   decimal.Decimal  `json:"carrierRate"`
	Margin        decimal.Decimal  `json:"margin"`
	EquipmentType string           `json:"equipmentType,omitempty"`
	WeightLbs     float64          `json:"weightLbs,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	DocumentURLs  []string         `json:"documentUrls"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// LoadListItem is the denser list view: the documents array collapses to a
// count and nested entities appear as summaries.
type LoadListItem struct {
	ID              string           `json:"id"`
	RefNumber       string           `json:"refNumber"`
	Status          string           `json:"status"`
	Customer        *CustomerSummary `json:"customer"`
	Carrier         *CarrierSummary  `json:"carrier"`
	OriginCity      string           `json:"originCity,omitempty"`
	DestinationCity string           `json:"destinationCity,omitempty"`
	PickupDate      *time.Time       `json:"pickupDate"`
	DeliveryDate    *time.Time       `json:"deliveryDate"`
	Rate            decimal.Decimal  `json:"rate"`
	DocumentsCount  int              `json:"documentsCount"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ToLoadResponse formats the full view. Nil customer/carrier yield explicit
// nulls rather than absent keys; the function never fails on missing
// optional fields.
func ToLoadResponse(l domain.Load, customer *domain.Customer, carrier *domain.Carrier) LoadResponse {
	resp := LoadResponse{
		ID:            l.LoadID,
		RefNumber:     l.RefNumber,
		Status:        string(l.Status),
		CustomerID:    l.CustomerID,
		CarrierID:     l.CarrierID,
		Origin:        ToAddressDTO(l.Origin),
		Destination:   ToAddressDTO(l.Destination),
		PickupDate:    timePtr(l.PickupDate),
		DeliveryDate:  timePtr(l.DeliveryDate),
		Rate:          l.Rate,
		CarrierRate:   l.CarrierRate,
		Margin:        l.Margin(),
		EquipmentType: l.EquipmentType,
		WeightLbs:     l.WeightLbs,
		Notes:         l.Notes,
		DocumentURLs:  l.DocumentURLs,
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
	if resp.DocumentURLs == nil {
		resp.DocumentURLs = []string{}
	}
	if customer != nil {
		s := ToCustomerSummary(*customer)
		resp.Customer = &s
	}
	if carrier != nil {
		s := ToCarrierSummary(*carrier)
		resp.Carrier = &s
	}
	return resp
}

// ToLoadListItem formats the dense list view.
func ToLoadListItem(l domain.Load, customer *domain.Customer, carrier *domain.Carrier) LoadListItem {
	item := LoadListItem{
		ID:              l.LoadID,
		RefNumber:       l.RefNumber,
		Status:          string(l.Status),
		OriginCity:      l.Origin.City,
		DestinationCity: l.Destination.City,
		PickupDate:      timePtr(l.PickupDate),
		DeliveryDate:    timePtr(l.DeliveryDate),
		Rate:            l.Rate,
		DocumentsCount:  len(l.DocumentURLs),
		CreatedAt:       l.CreatedAt,
	}
	if customer != nil {
		s := ToCustomerSummary(*customer)
		item.Customer = &s
	}
	if carrier != nil {
		s := ToCarrierSummary(*carrier)
		item.Carrier = &s
	}
	return item
}

// ToLoadSummary formats the minimal cross-entity view.
func ToLoadSummary(l domain.Load) LoadSummary {
	return LoadSummary{ID: l.LoadID, RefNumber: l.RefNumber, Status: string(l.Status)}
}
