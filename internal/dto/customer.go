package dto

import (
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
)

// CreateCustomerRequest is the body accepted by POST /customers.
type CreateCustomerRequest struct {
	CompanyName string     `json:"companyName" binding:"required"`
	ContactName string     `json:"contactName"`
	Email       string     `json:"email" binding:"required,email"`
	Phone       string     `json:"phone"`
	Address     AddressDTO `json:"address"`
	MCNumber    string     `json:"mcNumber"`
	CreditLimit float64    `json:"creditLimit"`
	Notes       string     `json:"notes"`
}

// CustomerSummary is the minimal view embedded in load responses.
type CustomerSummary struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email,omitempty"`
}

// CustomerResponse is the full single-record view.
type CustomerResponse struct {
	ID            string     `json:"id"`
	CompanyName   string     `json:"companyName"`
	ContactName   string     `json:"contactName,omitempty"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	Address       AddressDTO `json:"address"`
	MCNumber      string     `json:"mcNumber,omitempty"`
	CreditLimit   float64    `json:"creditLimit,omitempty"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastUpdatedAt time.Time  `json:"lastUpdatedAt"`
}

// CustomerListItem is the denser list view.
type CustomerListItem struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCustomerResponse formats the full view.
func ToCustomerResponse(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.CustomerID,
		CompanyName:   c.CompanyName,
		ContactName:   c.ContactName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       ToAddressDTO(c.Address),
		MCNumber:      c.MCNumber,
		CreditLimit:   c.CreditLimit,
		Status:        string(c.Status),
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToCustomerListItem formats the dense list view.
func ToCustomerListItem(c domain.Customer) CustomerListItem {
	return CustomerListItem{
		ID:          c.CustomerID,
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
	}
}

// ToCustomerSummary formats the minimal cross-entity view.
func ToCustomerSummary(c domain.Customer) CustomerSummary {
	return CustomerSummary{ID: c.CustomerID, CompanyName: c.CompanyName, Email: c.Email}
}
