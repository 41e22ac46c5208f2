package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/mallhub/backend/docs"
	propertyapp "github.com/mallhub/backend/internal/application/property"
	"github.com/mallhub/backend/internal/infrastructure/config"
	"github.com/mallhub/backend/internal/infrastructure/logger"
	"github.com/mallhub/backend/internal/infrastructure/telemetry"
	"github.com/mallhub/backend/internal/interfaces/http/dto"
	"github.com/mallhub/backend/internal/interfaces/http/handler"
	"github.com/mallhub/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP engine is built from
type Dependencies struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            handler.DatabaseStatus
	Accounts      *propertyapp.AccountService
	Malls         *propertyapp.MallService
	Units         *propertyapp.UnitService
	MeterProvider *telemetry.MeterProvider // optional
	RateLimiter   *middleware.RateLimiter  // optional; the caller stops it
}

// NewEngine builds the gin engine: the middleware chain, the operational
// endpoints and the /api routes.
func NewEngine(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	middleware.SetupValidator()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(deps.Logger),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName:      cfg.Telemetry.ServiceName,
			Enabled:          cfg.Telemetry.Enabled,
			SkipPathPrefixes: middleware.DefaultTracingConfig().SkipPathPrefixes,
		}),
		middleware.SpanEnricher(),
		middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: deps.MeterProvider,
			Enabled:       cfg.Telemetry.MetricsEnabled,
			Logger:        deps.Logger,
		}),
		middleware.ProfilingWithConfig(middleware.ProfilingConfig{
			Enabled:          cfg.Profiling.Enabled,
			SkipPaths:        middleware.DefaultProfilingConfig().SkipPaths,
			SkipPathPrefixes: middleware.DefaultProfilingConfig().SkipPathPrefixes,
		}),
		logger.GinMiddleware(deps.Logger),
		middleware.Secure(),
		middleware.CORSWithConfig(corsConfig(cfg.HTTP)),
	)
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}
	if deps.RateLimiter != nil {
		engine.Use(middleware.RateLimit(deps.RateLimiter))
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse("Method not allowed"))
	})

	engine.GET("/health", handler.NewHealthHandler(deps.DB).Check)
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	NewRouter(engine).
		Register(PropertyRoutes(
			handler.NewAccountHandler(deps.Accounts),
			handler.NewMallHandler(deps.Malls),
			handler.NewUnitHandler(deps.Units),
		)...).
		Setup()

	return engine, nil
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
