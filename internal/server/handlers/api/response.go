package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AbortWithError(ctx *gin.Context, status int, code string, err error) {
	ctx.Abort()
	_ = ctx.Error(err)
	ctx.PureJSON(status, APIError{
		Code:    code,
		Message: err.Error(),
	})
}

// NotFound renders the response for unmatched routes.
func NotFound(ctx *gin.Context) {
	ctx.PureJSON(http.StatusNotFound, APIError{
		Code:    CodeNotFound,
		Message: "not found",
	})
}

// MethodNotAllowed renders the response for a known path with the wrong method.
func MethodNotAllowed(ctx *gin.Context) {
	ctx.PureJSON(http.StatusMethodNotAllowed, APIError{
		Code:    CodeMethodNotAllowed,
		Message: "method not allowed",
	})
}
