package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer plugs the embedded views into echo.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
