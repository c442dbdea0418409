package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/utils/export"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

// exportLimit caps how many rows one spreadsheet export will carry.
const exportLimit = 10000

var loadRules = rules.RuleSet{
	"refNumber":   "required",
	"customerId":  "required,uuid4",
	"carrierId":   "uuid4",
	"status":      "oneof=listed dispatched in_transit delivered completed cancelled",
	"rate":        "gte=0",
	"carrierRate": "gte=0",
	"weightLbs":   "gte=0",
}

// loadStatusTransitions lists the reachable next states per current state.
var loadStatusTransitions = map[domain.LoadStatus][]domain.LoadStatus{
	domain.LoadStatusListed:     {domain.LoadStatusDispatched, domain.LoadStatusCancelled},
	domain.LoadStatusDispatched: {domain.LoadStatusInTransit, domain.LoadStatusListed, domain.LoadStatusCancelled},
	domain.LoadStatusInTransit:  {domain.LoadStatusDelivered, domain.LoadStatusCancelled},
	domain.LoadStatusDelivered:  {domain.LoadStatusCompleted, domain.LoadStatusInTransit},
	domain.LoadStatusCompleted:  {},
	domain.LoadStatusCancelled:  {domain.LoadStatusListed},
}

type loadService struct {
	*RecordService[domain.Load]
	customerRepo portsrepo.EntityRepositoryFacade[domain.Customer]
	carrierRepo  portsrepo.EntityRepositoryFacade[domain.Carrier]
	notifier     portssvc.Notifier
}

// NewLoadService builds the load service on top of the generic engine.
func NewLoadService(repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, opts ...RecordOption[domain.Load]) portssvc.LoadSvcFacade {
	base := []RecordOption[domain.Load]{
		WithBeforeCreate[domain.Load](defaultLoadStatus),
	}
	engine := NewRecordService(RecordConfig[domain.Load]{
		EntityType:   domain.EntityLoad,
		EntityName:   "load",
		Repo:         repos.LoadRepo,
		History:      repos.HistoryRepo,
		CreateRules:  loadRules,
		UpdateRules:  loadRules,
		SearchFields: []string{"refNumber", "equipmentType", "notes"},
		UniqueFields: []string{"refNumber"},
		SoftDelete:   true,
	}, append(base, opts...)...)

	return &loadService{
		RecordService: engine,
		customerRepo:  repos.CustomerRepo,
		carrierRepo:   repos.CarrierRepo,
		notifier:      notifier,
	}
}

var _ portssvc.LoadSvcFacade = (*loadService)(nil)

func defaultLoadStatus(_ context.Context, fields map[string]any) error {
	if v, ok := fields["status"]; !ok || v == nil || v == "" {
		fields["status"] = string(domain.LoadStatusListed)
	}
	return nil
}

func (s *loadService) UpdateLoadStatus(ctx context.Context, loadID string, status domain.LoadStatus, actorID string) (*domain.Load, error) {
	if _, known := loadStatusTransitions[status]; !known {
		return nil, apperrors.NewValidationError(apperrors.FieldViolation{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", status),
		})
	}

	current, err := s.GetRecordByID(ctx, loadID)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !transitionAllowed(current.Status, status) {
		return nil, apperrors.NewValidationError(apperrors.FieldViolation{
			Field:   "status",
			Message: fmt.Sprintf("cannot move from %s to %s", current.Status, status),
		})
	}

	updated, _, err := s.updateWithAction(ctx, loadID, map[string]any{"status": string(status)}, actorID, domain.ActionStatusUpdated)
	if err != nil {
		return nil, err
	}

	if status == domain.LoadStatusDelivered && s.notifier != nil {
		if err := s.notifier.NotifyLoadStatusChange(ctx, *updated, current.Status); err != nil {
			s.LogWarn(ctx, "delivery notification failed",
				slog.String("load_id", loadID),
				slog.String("error", err.Error()))
		}
	}
	return updated, nil
}

func transitionAllowed(from, to domain.LoadStatus) bool {
	for _, next := range loadStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *loadService) ExportLoads(ctx context.Context, q domain.QueryDescriptor) ([]byte, string, error) {
	q.Page = 1
	q.Limit = exportLimit
	loads, _, err := s.cfg.Repo.Find(ctx, q, false)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch loads for export: %w", err)
	}
	rel, err := s.ResolveLoadRelations(ctx, loads)
	if err != nil {
		return nil, "", err
	}

	content, err := export.LoadsReport(loads, rel.Customers, rel.Carriers)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render loads report: %w", err)
	}
	filename := fmt.Sprintf("loads_%s.xlsx", s.now().Format("2006-01-02"))
	return content, filename, nil
}

func (s *loadService) ResolveLoadRelations(ctx context.Context, loads []domain.Load) (*portssvc.LoadRelations, error) {
	rel := &portssvc.LoadRelations{
		Customers: make(map[string]domain.Customer),
		Carriers:  make(map[string]domain.Carrier),
	}

	var customerIDs, carrierIDs []string
	for _, l := range loads {
		customerIDs = append(customerIDs, l.CustomerID)
		carrierIDs = append(carrierIDs, l.CarrierID)
	}

	customers, err := findByIDs(ctx, s.customerRepo, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve load customers: %w", err)
	}
	for _, c := range customers {
		rel.Customers[c.CustomerID] = c
	}

	carriers, err := findByIDs(ctx, s.carrierRepo, carrierIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve load carriers: %w", err)
	}
	for _, c := range carriers {
		rel.Carriers[c.CarrierID] = c
	}
	return rel, nil
}

// findByIDs batch-fetches records through the generic store's membership
// filter. Empty and duplicate IDs are dropped first.
func findByIDs[T any](ctx context.Context, repo portsrepo.EntityRepositoryFacade[T], ids []string) ([]T, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return nil, nil
	}

	q := domain.QueryDescriptor{
		Conditions: []domain.Condition{{Field: "id", Op: domain.OpIn, Value: unique}},
		Page:       1,
		Limit:      len(unique),
	}
	records, _, err := repo.Find(ctx, q, false)
	return records, err
}
