package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pb33f/libopenapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexServesHTML(t *testing.T) {
	w := httptest.NewRecorder()
	Index(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Calculator")
}

func TestStaticServesAssets(t *testing.T) {
	h := http.StripPrefix("/static/", Static())

	for path, contentType := range map[string]string{
		"/static/style.css": "text/css",
		"/static/app.js":    "javascript",
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), contentType, path)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/missing.txt", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOpenAPIDocumentDescribesAPI(t *testing.T) {
	raw, err := OpenAPIDocument()
	require.NoError(t, err)

	doc, err := libopenapi.NewDocument(raw)
	require.NoError(t, err)

	model, errs := doc.BuildV3Model()
	require.Nil(t, errs)
	require.NotNil(t, model)

	paths := map[string]bool{}
	for pair := model.Model.Paths.PathItems.First(); pair != nil; pair = pair.Next() {
		paths[pair.Key()] = true
		if pair.Key() == "/calculate" {
			require.NotNil(t, pair.Value().Post, "/calculate must be a POST operation")
		}
	}

	for _, path := range []string{"/calculate", "/health", "/api", "/"} {
		assert.True(t, paths[path], "expected path %s in document", path)
	}
}

func TestOpenAPIHandler(t *testing.T) {
	w := httptest.NewRecorder()
	OpenAPI(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "openapi: 3"))
}
