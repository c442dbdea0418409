package dto

import (
	"time"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceivableRequest is the body accepted by POST /receivables.
type CreateReceivableRequest struct {
	LoadID        string          `json:"loadId" binding:"required"`
	CustomerID    string          `json:"customerId" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceNumber string          `json:"invoiceNumber"`
	DueDate       *time.Time      `json:"dueDate"`
}

// CreatePayableRequest is the body accepted by POST /payables.
type CreatePayableRequest struct {
	LoadID        string          `json:"loadId" binding:"required"`
	CarrierID     string          `json:"carrierId" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate *time.Time      `json:"scheduledDate"`
}

// ReceivableResponse is the full single-record view. Load is populated
// only when joined; otherwise only the identifier is carried.
type ReceivableResponse struct {
	ID            string           `json:"id"`
	LoadID        string           `json:"loadId"`
	CustomerID    string           `json:"customerId"`
	Load          *LoadSummary     `json:"load"`
	Customer      *CustomerSummary `json:"customer"`
	Amount        decimal.Decimal  `json:"amount"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
	DueDate       *time.Time       `json:"dueDate"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// PayableResponse is the full single-record view.
type PayableResponse struct {
	ID            string          `json:"id"`
	LoadID        string          `json:"loadId"`
	CarrierID     string          `json:"carrierId"`
	Load          *LoadSummary    `json:"load"`
	Carrier       *CarrierSummary `json:"carrier"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate *time.Time      `json:"scheduledDate"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToReceivableResponse formats the full view; nil joins yield explicit nulls.
func ToReceivableResponse(r domain.PaymentReceivable, load *domain.Load, customer *domain.Customer) ReceivableResponse {
	resp := ReceivableResponse{
		ID:            r.ReceivableID,
		LoadID:        r.LoadID,
		CustomerID:    r.CustomerID,
		Amount:        r.Amount,
		InvoiceNumber: r.InvoiceNumber,
		DueDate:       timePtr(r.DueDate),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		LastUpdatedAt: r.LastUpdatedAt,
	}
	if load != nil {
		s := ToLoadSummary(*load)
		resp.Load = &s
	}
	if customer != nil {
		s := ToCustomerSummary(*customer)
		resp.Customer = &s
	}
	return resp
}

// ToPayableResponse formats the full view; nil joins yield explicit nulls.
func ToPayableResponse(p domain.PaymentPayable, load *domain.Load, carrier *domain.Carrier) PayableResponse {
	resp := PayableResponse{
		ID:            p.PayableID,
		LoadID:        p.LoadID,
		CarrierID:     p.CarrierID,
		Amount:        p.Amount,
		ScheduledDate: timePtr(p.ScheduledDate),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
	if load != nil {
		s := ToLoadSummary(*load)
		resp.Load = &s
	}
	if carrier != nil {
		s := ToCarrierSummary(*carrier)
		resp.Carrier = &s
	}
	return resp
}
