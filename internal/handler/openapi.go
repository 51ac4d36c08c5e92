package handler

import (
	"embed"
	"net/http"

	"github.com/deppfellow/calculator-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed static/openapi.html static/openapi.json
var staticFiles embed.FS

// OpenAPIHandler serves the API documentation.
//
// The UI is a static HTML page that loads its JS from a CDN and reads the
// OpenAPI document from /static/openapi.json. Both files are embedded in
// the binary.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the docs page with caching disabled.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	return h.serve(c, "static/openapi.html", echo.MIMETextHTMLCharsetUTF8)
}

// ServeOpenAPISpec serves the OpenAPI document.
func (h *OpenAPIHandler) ServeOpenAPISpec(c echo.Context) error {
	return h.serve(c, "static/openapi.json", echo.MIMEApplicationJSON)
}

func (h *OpenAPIHandler) serve(c echo.Context, name, contentType string) error {
	data, err := staticFiles.ReadFile(name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.Blob(http.StatusOK, contentType, data)
}
