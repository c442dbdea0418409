package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/freightops/freight_broker_app/cmd/docs"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/middleware"
	"github.com/freightops/freight_broker_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	storage portssvc.FileStorage,
) {
	if !cfg.IsProduction {
		// development mode passes internal error detail through to callers
		r.Use(func(c *gin.Context) {
			c.Set(errorDetailKey, true)
			c.Next()
		})
	}

	r.GET("/health", healthCheck)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Everything under /api/v1 requires a valid bearer token
	setupAPIV1Routes(r, services, storage)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	storage portssvc.FileStorage,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token))

	registerLoadRoutes(v1, services.Load, services.History, storage)
	registerCustomerRoutes(v1, services.Customer, services.History)
	registerCarrierRoutes(v1, services.Carrier, services.History)
	registerUserRoutes(v1, services.User, services.History)
	registerPaymentRoutes(v1, services.Receivable, services.Payable, services.History)
	registerFileRoutes(v1, storage)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
