package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag/v2"

	"github.com/azure-identities/identities-api/internal/server/docs"
	"github.com/azure-identities/identities-api/internal/server/handlers/api"
)

// OpenAPIDocPath is where the API description is served in Development.
const OpenAPIDocPath = "/openapi/v1.json"

// OpenAPIDocument serves the registered OpenAPI document.
func OpenAPIDocument(ctx *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		slog.Error("openapi read doc", "error", err)
		api.AbortWithError(ctx, http.StatusInternalServerError, api.CodeInternalError, err)
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
