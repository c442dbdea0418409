package domain

// CustomerStatus gates whether new loads may be booked for a customer.
type CustomerStatus string

const (
	CustomerStatusActive     CustomerStatus = "active"
	CustomerStatusInactive   CustomerStatus = "inactive"
	CustomerStatusCreditHold CustomerStatus = "credit_hold"
)

// Customer is a shipper the brokerage books loads for.
type Customer struct {
	CustomerID  string         `json:"id"`
	CompanyName string         `json:"companyName"`
	ContactName string         `json:"contactName,omitempty"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone,omitempty"`
	Address     Address        `json:"address"`
	MCNumber    string         `json:"mcNumber,omitempty"`
	CreditLimit float64        `json:"creditLimit,omitempty"`
	Status      CustomerStatus `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	AuditFields
	SoftDeleteFields
}
