package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed dashboard.html.tmpl
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.ParseFS(templateFS, "dashboard.html.tmpl"),
)

// templateData carries the report plus its JSON form for the chart
// scripts.
type templateData struct {
	Report *Report
	JSON   template.JS
}

// RenderHTML writes the static dashboard page with the report embedded
// as chart data.
func RenderHTML(w io.Writer, r *Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	data := templateData{
		Report: r,
		JSON:   template.JS(payload),
	}

	if err := dashboardTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}
