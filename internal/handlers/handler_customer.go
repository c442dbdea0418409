package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	recordHandler[domain.Customer]
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, cs portssvc.CustomerSvcFacade, hs portssvc.HistorySvcFacade) {
	h := &customerHandler{
		recordHandler: recordHandler[domain.Customer]{
			svc:          cs,
			historySvc:   hs,
			entityType:   domain.EntityCustomer,
			formatSingle: formatCustomer,
			formatPage:   formatCustomerPage,
		},
	}

	customers := rg.Group("/customers")
	h.registerRecordRoutes(customers)
}

func formatCustomer(_ context.Context, customer domain.Customer) (any, error) {
	return dto.ToCustomerResponse(customer), nil
}

func formatCustomerPage(_ context.Context, customers []domain.Customer) ([]any, error) {
	items := make([]any, len(customers))
	for i, customer := range customers {
		items[i] = dto.ToCustomerListItem(customer)
	}
	return items, nil
}
