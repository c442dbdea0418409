package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	"github.com/freightops/freight_broker_app/internal/models"
	"github.com/freightops/freight_broker_app/internal/utils/mapping"
)

// auditColumns is the whitelist slice shared by every table.
var auditColumns = map[string]string{
	"createdAt":     "created_at",
	"createdBy":     "created_by",
	"lastUpdatedAt": "last_updated_at",
	"lastUpdatedBy": "last_updated_by",
	"deletedAt":     "deleted_at",
	"deletedBy":     "deleted_by",
}

func withAuditColumns(cols map[string]string) map[string]string {
	for f, c := range auditColumns {
		cols[f] = c
	}
	return cols
}

var loadTableSpec = TableSpec{
	Table:    "loads",
	IDColumn: "load_id",
	IDField:  "id",
	Columns: withAuditColumns(map[string]string{
		"id":            "load_id",
		"refNumber":     "ref_number",
		"status":        "status",
		"customerId":    "customer_id",
		"carrierId":     "carrier_id",
		"origin":        "origin",
		"destination":   "destination",
		"pickupDate":    "pickup_date",
		"deliveryDate":  "delivery_date",
		"rate":          "rate",
		"carrierRate":   "carrier_rate",
		"equipmentType": "equipment_type",
		"weightLbs":     "weight_lbs",
		"notes":         "notes",
		"documentUrls":  "document_urls",
	}),
	SoftDelete: true,
	UniqueConstraints: map[string]string{
		"loads_ref_number_key": "refNumber",
	},
}

var customerTableSpec = TableSpec{
	Table:    "customers",
	IDColumn: "customer_id",
	IDField:  "id",
	Columns: withAuditColumns(map[string]string{
		"id":          "customer_id",
		"companyName": "company_name",
		"contactName": "contact_name",
		"email":       "email",
		"phone":       "phone",
		"address":     "address",
		"mcNumber":    "mc_number",
		"creditLimit": "credit_limit",
		"status":      "status",
		"notes":       "notes",
	}),
	SoftDelete: true,
	UniqueConstraints: map[string]string{
		"customers_email_key": "email",
	},
}

var carrierTableSpec = TableSpec{
	Table:    "carriers",
	IDColumn: "carrier_id",
	IDField:  "id",
	Columns: withAuditColumns(map[string]string{
		"id":                  "carrier_id",
		"companyName":         "company_name",
		"mcNumber":            "mc_number",
		"dotNumber":           "dot_number",
		"email":               "email",
		"phone":               "phone",
		"address":             "address",
		"equipmentTypes":      "equipment_types",
		"insuranceExpiryDate": "insurance_expiry_date",
		"status":              "status",
		"notes":               "notes",
	}),
	SoftDelete: true,
	UniqueConstraints: map[string]string{
		"carriers_mc_number_key": "mcNumber",
	},
}

var userTableSpec = TableSpec{
	Table:    "users",
	IDColumn: "user_id",
	IDField:  "id",
	Columns: withAuditColumns(map[string]string{
		"id":             "user_id",
		"name":           "name",
		"email":          "email",
		"passwordHash":   "password_hash",
		"role":           "role",
		"authProvider":   "auth_provider",
		"providerUserId": "provider_user_id",
		"emailVerified":  "email_verified",
	}),
	SoftDelete: true,
	UniqueConstraints: map[string]string{
		"users_email_key": "email",
	},
}

var receivableTableSpec = TableSpec{
	Table:    "payment_receivables",
	IDColumn: "receivable_id",
	IDField:  "id",
	Columns: withAuditColumns(map[string]string{
		"id":            "receivable_id",
		"loadId":        "load_id",
		"customerId":    "customer_id",
		"amount":        "amount",
		"invoiceNumber": "invoice_number",
		"dueDate":       "due_date",
		"status":        "status",
	}),
	SoftDelete: true,
	UniqueConstraints: map[string]string{
		"payment_receivables_invoice_number_key": "invoiceNumber",
	},
}

var payableTableSpec = TableSpec{
	Table:    "payment_payables",
	IDColumn: "payable_id",
	IDField:  "id",
	Columns: withAuditColumns(map[string]string{
		"id":            "payable_id",
		"loadId":        "load_id",
		"carrierId":     "carrier_id",
		"amount":        "amount",
		"scheduledDate": "scheduled_date",
		"status":        "status",
	}),
	SoftDelete: true,
}

func newPgxLoadRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade[domain.Load] {
	return newPgxEntityRepository[domain.Load, models.Load](pool, loadTableSpec, mapping.ToDomainLoad)
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade[domain.Customer] {
	return newPgxEntityRepository[domain.Customer, models.Customer](pool, customerTableSpec, mapping.ToDomainCustomer)
}

func newPgxCarrierRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade[domain.Carrier] {
	return newPgxEntityRepository[domain.Carrier, models.Carrier](pool, carrierTableSpec, mapping.ToDomainCarrier)
}

func newPgxReceivableRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade[domain.PaymentReceivable] {
	return newPgxEntityRepository[domain.PaymentReceivable, models.PaymentReceivable](pool, receivableTableSpec, mapping.ToDomainReceivable)
}

func newPgxPayableRepository(pool *pgxpool.Pool) portsrepo.EntityRepositoryFacade[domain.PaymentPayable] {
	return newPgxEntityRepository[domain.PaymentPayable, models.PaymentPayable](pool, payableTableSpec, mapping.ToDomainPayable)
}
