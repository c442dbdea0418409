package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
)

// carrierHandler handles HTTP requests related to carriers.
type carrierHandler struct {
	recordHandler[domain.Carrier]
}

// registerCarrierRoutes registers routes related to carriers.
func registerCarrierRoutes(rg *gin.RouterGroup, cs portssvc.CarrierSvcFacade, hs portssvc.HistorySvcFacade) {
	h := &carrierHandler{
		recordHandler: recordHandler[domain.Carrier]{
			svc:          cs,
			historySvc:   hs,
			entityType:   domain.EntityCarrier,
			formatSingle: formatCarrier,
			formatPage:   formatCarrierPage,
		},
	}

	carriers := rg.Group("/carriers")
	h.registerRecordRoutes(carriers)
}

func formatCarrier(_ context.Context, carrier domain.Carrier) (any, error) {
	return dto.ToCarrierResponse(carrier), nil
}

func formatCarrierPage(_ context.Context, carriers []domain.Carrier) ([]any, error) {
	items := make([]any, len(carriers))
	for i, carrier := range carriers {
		items[i] = dto.ToCarrierListItem(carrier)
	}
	return items, nil
}
