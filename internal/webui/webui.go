package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"dashboard.solarcredits.org/internal/app"
)

// PageContentSecurityPolicy allows same-origin assets plus the Chart.js CDN.
const PageContentSecurityPolicy = "default-src 'self'; script-src 'self' https://cdn.jsdelivr.net; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none';"

// ChartScriptURL is the Chart.js bundle loaded by the generation page.
const ChartScriptURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// WebUI serves the HTML pages of the dashboard.
type WebUI struct {
	*app.Application

	// Now is the clock behind the current month display.
	Now func() time.Time

	templates *template.Template
	static    fs.FS
}

func NewWebUI(application *app.Application) (*WebUI, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &WebUI{
		Application: application,
		Now:         time.Now,
		templates:   templates,
		static:      static,
	}, nil
}
