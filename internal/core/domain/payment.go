package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts serialize as JSON numbers so wire payloads and audit diffs
	// compare canonically with client-supplied numeric values.
	decimal.MarshalJSONWithoutQuotes = true
}

// ReceivableStatus tracks money owed by a customer for a delivered load.
type ReceivableStatus string

const (
	ReceivableStatusPending  ReceivableStatus = "pending"
	ReceivableStatusInvoiced ReceivableStatus = "invoiced"
	ReceivableStatusPaid     ReceivableStatus = "paid"
	ReceivableStatusOverdue  ReceivableStatus = "overdue"
)

// PayableStatus tracks money owed to a carrier for a hauled load.
type PayableStatus string

const (
	PayableStatusPending  PayableStatus = "pending"
	PayableStatusApproved PayableStatus = "approved"
	PayableStatusPaid     PayableStatus = "paid"
)

// PaymentReceivable references exactly one load and one customer.
type PaymentReceivable struct {
	ReceivableID  string           `json:"id"`
	LoadID        string           `json:"loadId"`
	CustomerID    string           `json:"customerId"`
	Amount        decimal.Decimal  `json:"amount"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Status        ReceivableStatus `json:"status"`
	AuditFields
	SoftDeleteFields
}

// PaymentPayable references exactly one load and one carrier.
type PaymentPayable struct {
	PayableID     string          `json:"id"`
	LoadID        string          `json:"loadId"`
	CarrierID     string          `json:"carrierId"`
	Amount        decimal.Decimal `json:"amount"`
	ScheduledDate *time.Time      `json:"scheduledDate,omitempty"`
	Status        PayableStatus   `json:"status"`
	AuditFields
	SoftDeleteFields
}
