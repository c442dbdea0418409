package models

// Customer is the database shape of a shipper account.
type Customer struct {
	CustomerID  string  `db:"customer_id"`
	Seq         int64   `db:"seq"`
	CompanyName string  `db:"company_name"`
	ContactName string  `db:"contact_name"`
	Email       string  `db:"email"`
	Phone       string  `db:"phone"`
	Address     Address `db:"address"`
	MCNumber    string  `db:"mc_number"`
	CreditLimit float64 `db:"credit_limit"`
	Status      string  `db:"status"`
	Notes       string  `db:"notes"`
	AuditFields
	SoftDeleteFields
}
