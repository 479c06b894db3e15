package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// HTTPSRedirect answers every plaintext request with a 307 to the https URL.
// host replaces the request host in the redirect target when set.
// Requests marked X-Forwarded-Proto: https by a terminating proxy pass through.
func HTTPSRedirect(host string) gin.HandlerFunc {
	return secure.New(secure.Config{
		SSLRedirect:          true,
		SSLTemporaryRedirect: true,
		SSLHost:              host,
		IsDevelopment:        false,
		ContentTypeNosniff:   true,
		SSLProxyHeaders:      map[string]string{"X-Forwarded-Proto": "https"},
	})
}
