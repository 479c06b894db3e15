package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azure-identities/identities-api/internal/server/handlers/api"
)

// Recovery turns a handler panic into a 500 APIError.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		slog.Error("http handler panic",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", rec,
		)
		api.AbortWithError(c, http.StatusInternalServerError, api.CodeInternalError, errors.New("internal server error"))
	})
}
