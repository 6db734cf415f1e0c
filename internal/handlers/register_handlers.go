package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/mecmec98/billingrestapi/cmd/docs"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/middleware"
	"github.com/mecmec98/billingrestapi/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public routes: login (rate limited) and the reduced machine listing.
	registerPublicUserRoutes(r, cfg, services.User)
	registerPublicMachineRoutes(r, services.Machine)

	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	registerLedgerRoutes(r, auth, services.Ledger)
	registerReceiptRoutes(r, auth, services.Receipt)
	registerMachineRoutes(r, auth, services.Machine)
	registerConsumerRoutes(r, auth, services.Consumer)
	registerUserRoutes(r, auth, services.User)

	setupSwaggerRoutes(r, cfg)
}

// loginRateLimiter builds the in-memory limiter applied to the login route.
func loginRateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	instance := limiter.New(memory.NewStore(), rate)
	return middleware.RateLimit(instance)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
