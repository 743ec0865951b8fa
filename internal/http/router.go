package http

import (
	"log/slog"

	"github.com/andriiko/pocketbank/internal/config"
	"github.com/andriiko/pocketbank/internal/http/handlers"
	"github.com/andriiko/pocketbank/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth  handlers.Authenticator
	Rates handlers.RatesProvider
	Prom  *observability.Prom
	// Readiness probe for /readyz; nil means always ready.
	Ping func() error
}

func NewRouter(log *slog.Logger, cfg config.Config, deps Deps) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(otelgin.Middleware("pocketbank-api"))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// health
	h := handlers.NewHealthHandler(deps.Ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	// auth
	authHandler := handlers.NewAuthHandler(deps.Auth)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// exchange rates (read-only display feed)
	if deps.Rates != nil {
		ratesHandler := handlers.NewRatesHandler(deps.Rates)
		r.GET("/rates", ratesHandler.List)
	}

	return r
}
