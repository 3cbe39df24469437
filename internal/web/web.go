// Package web serves the embedded calculator front-end and API document.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static openapi.yaml
var assets embed.FS

// Index handles GET / with the calculator page.
func Index(w http.ResponseWriter, r *http.Request) {
	page, err := assets.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// Static serves the files under static/. Mount it with the /static/ prefix
// stripped.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}

// OpenAPI handles GET /openapi.yaml.
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := OpenAPIDocument()
	if err != nil {
		http.Error(w, "document unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// OpenAPIDocument returns the raw OpenAPI 3 document describing the API.
func OpenAPIDocument() ([]byte, error) {
	return assets.ReadFile("openapi.yaml")
}
