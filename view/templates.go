package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded pages for gin's HTML renderer.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// PageData is what every page template receives.
type PageData struct {
	Title      string
	Currency   string
	Error      string
	Asset      string
	Investment string
	Demo       bool
	Dashboard  *Dashboard
}
