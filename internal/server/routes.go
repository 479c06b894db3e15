package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azure-identities/identities-api/internal/healthcheck"
	"github.com/azure-identities/identities-api/internal/hostenv"
	"github.com/azure-identities/identities-api/internal/server/handlers"
	"github.com/azure-identities/identities-api/internal/server/handlers/api"
	"github.com/azure-identities/identities-api/internal/server/middlewares"
)

//	@title			Azure Identities API
//	@version		1.0.0
//	@description	Welcome and health endpoints of the Azure Identities API
//	@BasePath		/
//	@license.name	MIT

// Route is one entry of the route table.
type Route struct {
	Method      string
	Path        string
	Name        string
	Summary     string
	Description string
	Handler     gin.HandlerFunc
}

type RouteConfig struct {
	Environment   hostenv.Environment
	HTTPSRedirect bool
	RedirectHost  string
	Health        *healthcheck.Registry
	Clock         handlers.Clock
	Logger        *slog.Logger
}

func (c *RouteConfig) setDefaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Health == nil {
		c.Health = healthcheck.NewRegistry()
	}
}

// Routes returns the route table of the service. Development adds the
// OpenAPI document.
func Routes(cfg *RouteConfig) []Route {
	cfg.setDefaults()
	statusH := handlers.NewStatusHandler(cfg.Environment, cfg.Clock)

	routes := []Route{
		{
			Method:      http.MethodGet,
			Path:        "/",
			Name:        "HelloWorld",
			Summary:     "Get welcome message",
			Description: "Returns a hello world message with timestamp and environment info",
			Handler:     statusH.Welcome,
		},
		{
			Method:      http.MethodGet,
			Path:        "/health",
			Name:        "HealthCheck",
			Summary:     "Health check endpoint",
			Description: "Returns the health status of the API",
			Handler:     statusH.Health,
		},
		{
			Method:  http.MethodGet,
			Path:    "/health/ready",
			Name:    "Readiness",
			Handler: cfg.Health.Handler(nil),
		},
	}

	if cfg.Environment.IsDevelopment() {
		routes = append(routes, Route{
			Method:  http.MethodGet,
			Path:    handlers.OpenAPIDocPath,
			Name:    "OpenAPIDocument",
			Handler: handlers.OpenAPIDocument,
		})
	}
	return routes
}

func SetupRoutes(cfg *RouteConfig) http.Handler {
	cfg.setDefaults()

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// order matters: cors answers preflights before the https redirect
	r.Use(middlewares.Recovery())
	r.Use(middlewares.Logger(cfg.Logger))
	if cfg.Environment.IsDevelopment() {
		r.Use(middlewares.DevelopmentCORS())
	}
	if cfg.HTTPSRedirect {
		r.Use(middlewares.HTTPSRedirect(cfg.RedirectHost))
	}
	r.Use(middlewares.GZIP())

	for _, route := range Routes(cfg) {
		r.Handle(route.Method, route.Path, route.Handler)
		cfg.Logger.Debug("route registered", "name", route.Name, "method", route.Method, "path", route.Path)
	}

	r.NoRoute(api.NotFound)
	r.NoMethod(api.MethodNotAllowed)

	return r.Handler()
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
