package docs_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/gadgetpasal/backend/docs"
	"github.com/gadgetpasal/backend/internal/handler"
)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), raw)
	return doc
}

func TestSwaggerDoc_Registered(t *testing.T) {
	doc := readDoc(t)

	assert.Equal(t, "/api", doc.BasePath)
	assert.Contains(t, doc.Paths["/categories/{slug}/brands"], "get")
	assert.Contains(t, doc.Paths["/emi/calculate"], "post")

	product := doc.Definitions["model.Product"].Properties
	for _, field := range []string{"colors", "storage", "originalPrice", "discount", "rating", "reviewCount"} {
		assert.Contains(t, product, field)
	}
}

func TestSwaggerDoc_CoversEveryRoute(t *testing.T) {
	doc := readDoc(t)

	r := chi.NewRouter()
	h := &handler.Handlers{}
	h.Mount(r)

	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path := strings.TrimSuffix(strings.TrimPrefix(route, doc.BasePath), "/")
		assert.Contains(t, doc.Paths[path], strings.ToLower(method), "%s %s", method, route)
		return nil
	})
	require.NoError(t, err)
}
