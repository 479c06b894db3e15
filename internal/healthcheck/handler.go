package healthcheck

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Handler serves the aggregated status of the checks selected by pred as
// plain text. Responses are never cacheable.
func (r *Registry) Handler(pred Predicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		report := r.Run(c.Request.Context(), pred)

		if report.Status != Healthy {
			for name, entry := range report.Entries {
				if entry.Status == Healthy {
					continue
				}
				slog.Warn("health check failed",
					"name", name,
					"status", entry.Status.String(),
					"description", entry.Description,
					"duration", entry.Duration,
					"error", entry.Err,
				)
			}
		}

		c.Header("Cache-Control", "no-store, no-cache")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
		c.String(report.Status.HTTPStatus(), report.Status.String())
	}
}
