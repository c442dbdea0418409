package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReceivable is the database shape of money owed by a customer.
type PaymentReceivable struct {
	ReceivableID  string          `db:"receivable_id"`
	Seq           int64           `db:"seq"`
	LoadID        string          `db:"load_id"`
	CustomerID    string          `db:"customer_id"`
	Amount        decimal.Decimal `db:"amount"`
	InvoiceNumber string          `db:"invoice_number"`
	DueDate       *time.Time      `db:"due_date"`
	Status        string          `db:"status"`
	AuditFields
	SoftDeleteFields
}

// PaymentPayable is the database shape of money owed to a carrier.
type PaymentPayable struct {
	PayableID     string          `db:"payable_id"`
	Seq           int64           `db:"seq"`
	LoadID        string          `db:"load_id"`
	CarrierID     string          `db:"carrier_id"`
	Amount        decimal.Decimal `db:"amount"`
	ScheduledDate *time.Time      `db:"scheduled_date"`
	Status        string          `db:"status"`
	AuditFields
	SoftDeleteFields
}
