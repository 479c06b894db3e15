package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"
)

func TestSwaggerInfo_Basics(t *testing.T) {
	assert.NotNil(t, SwaggerInfo)
	assert.Equal(t, "Azure Identities API", SwaggerInfo.Title)
	assert.Equal(t, "1.0.0", SwaggerInfo.Version)
	assert.Equal(t, "/", SwaggerInfo.BasePath)
	assert.NotEmpty(t, SwaggerInfo.SwaggerTemplate)
}

func TestReadDoc_IsValidOpenAPI(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			OperationID string `json:"operationId"`
			Summary     string `json:"summary"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))

	assert.Equal(t, "3.1.0", parsed.OpenAPI)
	assert.Equal(t, "Azure Identities API", parsed.Info.Title)
	assert.Equal(t, "1.0.0", parsed.Info.Version)
	assert.Equal(t, "HelloWorld", parsed.Paths["/"]["get"].OperationID)
	assert.Equal(t, "Get welcome message", parsed.Paths["/"]["get"].Summary)
	assert.Equal(t, "HealthCheck", parsed.Paths["/health"]["get"].OperationID)
	assert.Equal(t, "Health check endpoint", parsed.Paths["/health"]["get"].Summary)
}
