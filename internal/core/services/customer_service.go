package services

import (
	"context"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

var customerRules = rules.RuleSet{
	"companyName": "required",
	"email":       "required,email",
	"status":      "oneof=active inactive credit_hold",
	"creditLimit": "gte=0",
}

type customerService struct {
	*RecordService[domain.Customer]
}

// NewCustomerService builds the customer service on top of the generic engine.
func NewCustomerService(repos portsrepo.RepositoryProvider, opts ...RecordOption[domain.Customer]) portssvc.CustomerSvcFacade {
	base := []RecordOption[domain.Customer]{
		WithBeforeCreate[domain.Customer](defaultCustomerStatus),
	}
	engine := NewRecordService(RecordConfig[domain.Customer]{
		EntityType:   domain.EntityCustomer,
		EntityName:   "customer",
		Repo:         repos.CustomerRepo,
		History:      repos.HistoryRepo,
		CreateRules:  customerRules,
		UpdateRules:  customerRules,
		SearchFields: []string{"companyName", "contactName", "email", "mcNumber"},
		UniqueFields: []string{"email"},
		SoftDelete:   true,
	}, append(base, opts...)...)

	return &customerService{RecordService: engine}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func defaultCustomerStatus(_ context.Context, fields map[string]any) error {
	if v, ok := fields["status"]; !ok || v == nil || v == "" {
		fields["status"] = string(domain.CustomerStatusActive)
	}
	return nil
}
