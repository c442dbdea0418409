package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
)

// receivableHandler handles HTTP requests related to payment receivables.
type receivableHandler struct {
	recordHandler[domain.PaymentReceivable]
	receivableService portssvc.ReceivableSvcFacade
}

// payableHandler handles HTTP requests related to payment payables.
type payableHandler struct {
	recordHandler[domain.PaymentPayable]
	payableService portssvc.PayableSvcFacade
}

// registerPaymentRoutes registers the receivable and payable route groups.
func registerPaymentRoutes(rg *gin.RouterGroup, rs portssvc.ReceivableSvcFacade, ps portssvc.PayableSvcFacade, hs portssvc.HistorySvcFacade) {
	rh := &receivableHandler{receivableService: rs}
	rh.recordHandler = recordHandler[domain.PaymentReceivable]{
		svc:          rs,
		historySvc:   hs,
		entityType:   domain.EntityReceivable,
		formatSingle: rh.formatReceivable,
		formatPage:   rh.formatReceivablePage,
	}
	rh.registerRecordRoutes(rg.Group("/receivables"))

	ph := &payableHandler{payableService: ps}
	ph.recordHandler = recordHandler[domain.PaymentPayable]{
		svc:          ps,
		historySvc:   hs,
		entityType:   domain.EntityPayable,
		formatSingle: ph.formatPayable,
		formatPage:   ph.formatPayablePage,
	}
	ph.registerRecordRoutes(rg.Group("/payables"))
}

func (h *receivableHandler) formatReceivable(ctx context.Context, record domain.PaymentReceivable) (any, error) {
	relations, err := h.receivableService.ResolveReceivableRelations(ctx, []domain.PaymentReceivable{record})
	if err != nil {
		return nil, err
	}
	return dto.ToReceivableResponse(record, lookup(relations.Loads, record.LoadID), lookup(relations.Customers, record.CustomerID)), nil
}

func (h *receivableHandler) formatReceivablePage(ctx context.Context, records []domain.PaymentReceivable) ([]any, error) {
	relations, err := h.receivableService.ResolveReceivableRelations(ctx, records)
	if err != nil {
		return nil, err
	}
	items := make([]any, len(records))
	for i, record := range records {
		items[i] = dto.ToReceivableResponse(record, lookup(relations.Loads, record.LoadID), lookup(relations.Customers, record.CustomerID))
	}
	return items, nil
}

func (h *payableHandler) formatPayable(ctx context.Context, record domain.PaymentPayable) (any, error) {
	relations, err := h.payableService.ResolvePayableRelations(ctx, []domain.PaymentPayable{record})
	if err != nil {
		return nil, err
	}
	return dto.ToPayableResponse(record, lookup(relations.Loads, record.LoadID), lookup(relations.Carriers, record.CarrierID)), nil
}

func (h *payableHandler) formatPayablePage(ctx context.Context, records []domain.PaymentPayable) ([]any, error) {
	relations, err := h.payableService.ResolvePayableRelations(ctx, records)
	if err != nil {
		return nil, err
	}
	items := make([]any, len(records))
	for i, record := range records {
		items[i] = dto.ToPayableResponse(record, lookup(relations.Loads, record.LoadID), lookup(relations.Carriers, record.CarrierID))
	}
	return items, nil
}
