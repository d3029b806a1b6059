package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/SscSPs/budgetwise/internal/core/ports/services"
	"github.com/SscSPs/budgetwise/internal/middleware"
	"github.com/SscSPs/budgetwise/internal/platform/config"
)

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg *config.Config, logger *slog.Logger, services *portssvc.ServiceContainer) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	RegisterRoutes(r, rateLimiter, services)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	rateLimiter *limiter.Limiter,
	services *portssvc.ServiceContainer,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, rateLimiter, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	rateLimiter *limiter.Limiter,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	registerLedgerRoutes(v1, services.Ledger)
	registerReportingRoutes(v1, services.Ledger)
	registerMonthRoutes(v1, services.Ledger)
	registerEnvelopeRoutes(v1, services.Ledger)
}
