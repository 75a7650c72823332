// Package web holds the embedded practice page and its static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/phrazzld/typeflow-api/internal/generation"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Choice is one entry of a select element on the page.
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// PageData is the data rendered into the index template.
type PageData struct {
	Title        string
	WordCounts   []Choice
	Difficulties []Choice
}

// NewPageData builds the option lists from the supported generation options.
func NewPageData() PageData {
	data := PageData{Title: "typeflow"}
	for _, wc := range generation.WordCounts() {
		data.WordCounts = append(data.WordCounts, Choice{
			Value:    string(wc),
			Label:    string(wc) + " words",
			Selected: wc == generation.DefaultWordCount,
		})
	}
	for _, d := range generation.Difficulties() {
		data.Difficulties = append(data.Difficulties, Choice{
			Value:    string(d),
			Label:    string(d),
			Selected: d == generation.DefaultDifficulty,
		})
	}
	return data
}

// Page renders the practice page.
type Page struct {
	tmpl *template.Template
	data PageData
}

// NewPage parses the embedded index template.
func NewPage() (*Page, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	return &Page{tmpl: tmpl, data: NewPageData()}, nil
}

// Render writes the page to w.
func (p *Page) Render(w io.Writer) error {
	return p.tmpl.Execute(w, p.data)
}

// StaticHandler serves the embedded assets. Mount it under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("embedded static directory missing: %v", err))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
