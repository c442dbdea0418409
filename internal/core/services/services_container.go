package services

import (
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portsrepo "github.com/freightops/freight_broker_app/internal/core/ports/repositories"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/platform/cache"
	"github.com/freightops/freight_broker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	ttl := cfg.ListCacheTTL
	container.Load = NewLoadService(repos, notifier,
		WithListCache[domain.Load](cache.New[domain.Load](ttl)))
	container.Customer = NewCustomerService(repos,
		WithListCache[domain.Customer](cache.New[domain.Customer](ttl)))
	container.Carrier = NewCarrierService(repos,
		WithListCache[domain.Carrier](cache.New[domain.Carrier](ttl)))
	container.User = NewUserService(repos)
	container.Receivable = NewReceivableService(repos,
		WithListCache[domain.PaymentReceivable](cache.New[domain.PaymentReceivable](ttl)))
	container.Payable = NewPayableService(repos,
		WithListCache[domain.PaymentPayable](cache.New[domain.PaymentPayable](ttl)))
	container.History = NewHistoryService(repos)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
