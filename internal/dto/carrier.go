package dto

import (
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// CreateCarrierRequest is the body accepted by POST /carriers.
type CreateCarrierRequest struct {
	CompanyName     string     `json:"companyName" binding:"required"`
	MCNumber        string     `json:"mcNumber" binding:"required"`
	DOTNumber       string     `json:"dotNumber"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         AddressDTO `json:"address"`
	EquipmentTypes  []string   `json:"equipmentTypes"`
	InsuranceExpiry *time.Time `json:"insuranceExpiryDate"`
	Notes           string     `json:"notes"`
}

// CarrierSummary is the minimal view embedded in load responses.
type CarrierSummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	MCNumber    string `json:"mcNumber"`
}

// CarrierResponse is the full single-record view.
type CarrierResponse struct {
	ID              string     `json:"id"`
	CompanyName     string     `json:"companyName"`
	MCNumber        string     `json:"mcNumber"`
	DOTNumber       string     `json:"dotNumber,omitempty"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         AddressDTO `json:"address"`
	EquipmentTypes  []string   `json:"equipmentTypes"`
	InsuranceExpiry *time.Time `json:"insuranceExpiryDate"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastUpdatedAt   time.Time  `json:"lastUpdatedAt"`
}

// CarrierListItem is the denser list view.
type CarrierListItem struct {
	ID              string     `json:"id"`
	CompanyName     string     `json:"companyName"`
	MCNumber        string     `json:"mcNumber"`
	Phone           string     `json:"phone,omitempty"`
	InsuranceExpiry *time.Time `json:"insuranceExpiryDate"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// ToCarrierResponse formats the full view.
func ToCarrierResponse(c domain.Carrier) CarrierResponse {
	resp := CarrierResponse{
		ID:              c.CarrierID,
		CompanyName:     c.CompanyName,
		MCNumber:        c.MCNumber,
		DOTNumber:       c.DOTNumber,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         ToAddressDTO(c.Address),
		EquipmentTypes:  c.EquipmentTypes,
		InsuranceExpiry: timePtr(c.InsuranceExpiry),
		Status:          string(c.Status),
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt,
		LastUpdatedAt:   c.LastUpdatedAt,
	}
	if resp.EquipmentTypes == nil {
		resp.EquipmentTypes = []string{}
	}
	return resp
}

// ToCarrierListItem formats the dense list view.
func ToCarrierListItem(c domain.Carrier) CarrierListItem {
	return CarrierListItem{
		ID:              c.CarrierID,
		CompanyName:     c.CompanyName,
		MCNumber:        c.MCNumber,
		Phone:           c.Phone,
		InsuranceExpiry: timePtr(c.InsuranceExpiry),
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
	}
}

// ToCarrierSummary formats the minimal cross-entity view.
func ToCarrierSummary(c domain.Carrier) CarrierSummary {
	return CarrierSummary{ID: c.CarrierID, CompanyName: c.CompanyName, MCNumber: c.MCNumber}
}
