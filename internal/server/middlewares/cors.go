package middlewares

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// development cors policy: any origin, any method, any header
var developmentCORS = cors.Config{
	AllowAllOrigins: true,
	AllowMethods: []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	},
	AllowHeaders:     []string{"*"},
	AllowCredentials: false,
}

// DevelopmentCORS allows cross-origin requests from anywhere. Only mount it
// outside production; without it browsers reject cross-origin calls.
func DevelopmentCORS() gin.HandlerFunc {
	return cors.New(developmentCORS)
}
