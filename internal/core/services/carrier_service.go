package services

import (
	"context"
	"strings"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/utils/rules"
)

var carrierRules = rules.RuleSet{
	"companyName": "required",
	"mcNumber":    "required",
	"email":       "email",
	"status":      "oneof=active inactive blacklisted",
}

type carrierService struct {
	*RecordService[domain.Carrier]
}

// NewCarrierService builds the carrier service on top of the generic engine.
func NewCarrierService(repos portsrepo.RepositoryProvider, opts ...RecordOption[domain.Carrier]) portssvc.CarrierSvcFacade {
	base := []RecordOption[domain.Carrier]{
		WithBeforeCreate[domain.Carrier](normalizeNewCarrier),
		WithBeforeUpdate[domain.Carrier](normalizeCarrierPatch),
	}
	engine := NewRecordService(RecordConfig[domain.Carrier]{
		EntityType:   domain.EntityCarrier,
		EntityName:   "carrier",
		Repo:         repos.CarrierRepo,
		History:      repos.HistoryRepo,
		CreateRules:  carrierRules,
		UpdateRules:  carrierRules,
		SearchFields: []string{"companyName", "mcNumber", "dotNumber", "email"},
		UniqueFields: []string{"mcNumber"},
		SoftDelete:   true,
	}, append(base, opts...)...)

	return &carrierService{RecordService: engine}
}

var _ portssvc.CarrierSvcFacade = (*carrierService)(nil)

func normalizeNewCarrier(_ context.Context, fields map[string]any) error {
	normalizeMCNumber(fields)
	if v, ok := fields["status"]; !ok || v == nil || v == "" {
		fields["status"] = string(domain.CarrierStatusActive)
	}
	return nil
}

func normalizeCarrierPatch(_ context.Context, _ *domain.Carrier, fields map[string]any) error {
	normalizeMCNumber(fields)
	return nil
}

// normalizeMCNumber uppercases the MC number and strips separators so the
// uniqueness check sees one canonical form, e.g. "mc-123 456" -> "MC123456".
func normalizeMCNumber(fields map[string]any) {
	raw, ok := fields["mcNumber"].(string)
	if !ok || raw == "" {
		return
	}
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(cleaned)
	fields["mcNumber"] = cleaned
}
