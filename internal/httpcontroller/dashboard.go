// internal/httpcontroller/dashboard.go
package httpcontroller

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed templates/index.html
var templateFiles embed.FS

// templateRenderer wraps html/template for echo.
type templateRenderer struct {
	templates *template.Template
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

// dashboardData is passed to the index template.
type dashboardData struct {
	Title string
}

// initDashboardRoutes sets up the embedded single-page dashboard. The page
// is display glue only; all data comes from the JSON API.
func (s *Server) initDashboardRoutes() {
	s.Echo.Renderer = &templateRenderer{
		templates: template.Must(template.ParseFS(templateFiles, "templates/*.html")),
	}

	s.Echo.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "index.html", dashboardData{
			Title: s.Settings.Main.Name,
		})
	})
}
