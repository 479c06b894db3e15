package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/azure-identities/identities-api/internal/hostenv"
	"github.com/azure-identities/identities-api/internal/server/models"
	"github.com/azure-identities/identities-api/internal/version"
)

const (
	WelcomeMessage = "Hello World from Azure Identities API!"
	StatusHealthy  = "Healthy"
)

// Clock returns the current time. Tests swap it for a fixed one.
type Clock func() time.Time

// StatusHandler serves the welcome and liveness endpoints.
type StatusHandler struct {
	env hostenv.Environment
	now Clock
}

// NewStatusHandler captures the hosting environment once at startup.
// A nil clock means time.Now.
func NewStatusHandler(env hostenv.Environment, now Clock) *StatusHandler {
	if now == nil {
		now = time.Now
	}
	return &StatusHandler{env: env, now: now}
}

// Welcome returns a hello world message with timestamp and environment info.
//
//	@Summary		Get welcome message
//	@Description	Returns a hello world message with timestamp and environment info
//	@Tags			status
//	@Produce		json
//	@Success		200	{object}	models.Welcome
//	@Router			/ [get]
//	@ID				HelloWorld
func (h *StatusHandler) Welcome(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, h.welcome())
}

// Health returns the health status of the API.
//
//	@Summary		Health check endpoint
//	@Description	Returns the health status of the API
//	@Tags			status
//	@Produce		json
//	@Success		200	{object}	models.Health
//	@Router			/health [get]
//	@ID				HealthCheck
func (h *StatusHandler) Health(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, h.health())
}

func (h *StatusHandler) welcome() *models.Welcome {
	return &models.Welcome{
		Message:     WelcomeMessage,
		Timestamp:   h.now().UTC(),
		Environment: h.env.Name(),
		Version:     version.APIVersion,
	}
}

func (h *StatusHandler) health() *models.Health {
	now := h.now().UTC()
	return &models.Health{
		Status:      StatusHealthy,
		Service:     version.AppName,
		Timestamp:   now,
		Environment: h.env.Name(),
		Uptime:      now.Format(models.RoundTripLayout),
	}
}
