package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

// systemActor stamps mutations made by scheduled jobs rather than a user.
const systemActor = "system"

var receivableRules = rules.RuleSet{
	"loadId":     "required,uuid4",
	"customerId": "required,uuid4",
	"amount":     "gte=0",
	"status":     "oneof=pending invoiced paid overdue",
}

var payableRules = rules.RuleSet{
	"loadId":    "required,uuid4",
	"carrierId": "required,uuid4",
	"amount":    "gte=0",
	"status":    "oneof=pending approved paid",
}

type receivableService struct {
	*RecordService[domain.PaymentReceivable]
	loadRepo     portsrepo.EntityRepositoryFacade[domain.Load]
	customerRepo portsrepo.EntityRepositoryFacade[domain.Customer]
}

// NewReceivableService builds the receivable service on the generic engine.
func NewReceivableService(repos portsrepo.RepositoryProvider, opts ...RecordOption[domain.PaymentReceivable]) portssvc.ReceivableSvcFacade {
	base := []RecordOption[domain.PaymentReceivable]{
		WithBeforeCreate[domain.PaymentReceivable](defaultReceivableStatus),
	}
	engine := NewRecordService(RecordConfig[domain.PaymentReceivable]{
		EntityType:   domain.EntityReceivable,
		EntityName:   "payment_receivable",
		Repo:         repos.ReceivableRepo,
		History:      repos.HistoryRepo,
		CreateRules:  receivableRules,
		UpdateRules:  receivableRules,
		SearchFields: []string{"invoiceNumber"},
		UniqueFields: []string{"invoiceNumber"},
		SoftDelete:   true,
	}, append(base, opts...)...)

	return &receivableService{
		RecordService: engine,
		loadRepo:      repos.LoadRepo,
		customerRepo:  repos.CustomerRepo,
	}
}

var _ portssvc.ReceivableSvcFacade = (*receivableService)(nil)

func defaultReceivableStatus(_ context.Context, fields map[string]any) error {
	if v, ok := fields["status"]; !ok || v == nil || v == "" {
		fields["status"] = string(domain.ReceivableStatusPending)
	}
	return nil
}

func (s *receivableService) ResolveReceivableRelations(ctx context.Context, records []domain.PaymentReceivable) (*portssvc.ReceivableRelations, error) {
	rel := &portssvc.ReceivableRelations{
		Loads:     make(map[string]domain.Load),
		Customers: make(map[string]domain.Customer),
	}

	var loadIDs, customerIDs []string
	for _, r := range records {
		loadIDs = append(loadIDs, r.LoadID)
		customerIDs = append(customerIDs, r.CustomerID)
	}

	loads, err := findByIDs(ctx, s.loadRepo, loadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve receivable loads: %w", err)
	}
	for _, l := range loads {
		rel.Loads[l.LoadID] = l
	}

	customers, err := findByIDs(ctx, s.customerRepo, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve receivable customers: %w", err)
	}
	for _, c := range customers {
		rel.Customers[c.CustomerID] = c
	}
	return rel, nil
}

// MarkOverdueReceivables flips open receivables past their due date to
// overdue. Runs from the scheduler, so failures on single records are
// logged and skipped.
func (s *receivableService) MarkOverdueReceivables(ctx context.Context) (int64, error) {
	now := s.now()
	q := domain.QueryDescriptor{
		Conditions: []domain.Condition{
			{Field: "status", Op: domain.OpIn, Value: []string{
				string(domain.ReceivableStatusPending),
				string(domain.ReceivableStatusInvoiced),
			}},
			{Field: "dueDate", Op: domain.OpLte, Value: now},
		},
		Page:  1,
		Limit: exportLimit,
	}
	open, _, err := s.cfg.Repo.Find(ctx, q, false)
	if err != nil {
		return 0, fmt.Errorf("failed to scan for overdue receivables: %w", err)
	}

	var flipped int64
	for _, r := range open {
		if r.DueDate == nil || !r.DueDate.Before(now) {
			continue
		}
		patch := map[string]any{"status": string(domain.ReceivableStatusOverdue)}
		if _, _, err := s.updateWithAction(ctx, r.ReceivableID, patch, systemActor, domain.ActionStatusUpdated); err != nil {
			s.LogWarn(ctx, "failed to mark receivable overdue",
				slog.String("receivable_id", r.ReceivableID),
				slog.String("error", err.Error()))
			continue
		}
		flipped++
	}
	if flipped > 0 {
		s.LogInfo(ctx, "marked receivables overdue", slog.Int64("count", flipped))
	}
	return flipped, nil
}

type payableService struct {
	*RecordService[domain.PaymentPayable]
	loadRepo    portsrepo.EntityRepositoryFacade[domain.Load]
	carrierRepo portsrepo.EntityRepositoryFacade[domain.Carrier]
}

// NewPayableService builds the payable service on the generic engine.
func NewPayableService(repos portsrepo.RepositoryProvider, opts ...RecordOption[domain.PaymentPayable]) portssvc.PayableSvcFacade {
	base := []RecordOption[domain.PaymentPayable]{
		WithBeforeCreate[domain.PaymentPayable](defaultPayableStatus),
	}
	engine := NewRecordService(RecordConfig[domain.PaymentPayable]{
		EntityType:  domain.EntityPayable,
		EntityName:  "payment_payable",
		Repo:        repos.PayableRepo,
		History:     repos.HistoryRepo,
		CreateRules: payableRules,
		UpdateRules: payableRules,
		SoftDelete:  true,
	}, append(base, opts...)...)

	return &payableService{
		RecordService: engine,
		loadRepo:      repos.LoadRepo,
		carrierRepo:   repos.CarrierRepo,
	}
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

func defaultPayableStatus(_ context.Context, fields map[string]any) error {
	if v, ok := fields["status"]; !ok || v == nil || v == "" {
		fields["status"] = string(domain.PayableStatusPending)
	}
	return nil
}

func (s *payableService) ResolvePayableRelations(ctx context.Context, records []domain.PaymentPayable) (*portssvc.PayableRelations, error) {
	rel := &portssvc.PayableRelations{
		Loads:    make(map[string]domain.Load),
		Carriers: make(map[string]domain.Carrier),
	}

	var loadIDs, carrierIDs []string
	for _, p := range records {
		loadIDs = append(loadIDs, p.LoadID)
		carrierIDs = append(carrierIDs, p.CarrierID)
	}

	loads, err := findByIDs(ctx, s.loadRepo, loadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payable loads: %w", err)
	}
	for _, l := range loads {
		rel.Loads[l.LoadID] = l
	}

	carriers, err := findByIDs(ctx, s.carrierRepo, carrierIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve payable carriers: %w", err)
	}
	for _, c := range carriers {
		rel.Carriers[c.CarrierID] = c
	}
	return rel, nil
}
