// Package render projects listings into their visual representations.
// It owns the embedded templates and performs all escaping centrally,
// so no handler ever builds markup from listing text by hand.
package render

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/cbaxter/domainfolio/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrNotFound is returned by RenderDetail when no listing has the
// requested id. Nothing is written in that case.
var ErrNotFound = errors.New("listing not found")

// ListingSource is the read-only lookup the detail view needs. Detail
// lookups always go against the full store, never the filtered view, so a
// listing stays reachable even when filtered off the collection page.
type ListingSource interface {
	Get(id int64) (model.Listing, bool)
}

// Engine renders the collection and detail views.
type Engine struct {
	templates *template.Template
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Engine{templates: tmpl}, nil
}

// RenderCollection replaces the visible card list with one card per
// listing, preserving the given order. The page is rendered whole each
// time; there is no incremental diffing.
func (e *Engine) RenderCollection(w io.Writer, listings []model.Listing, categories, extensions []string, criteria model.Criteria) error {
	page := PageView{
		Cards:         make([]CardView, 0, len(listings)),
		Count:         len(listings),
		Categories:    categories,
		Extensions:    extensions,
		PriceBrackets: DefaultPriceBrackets(),
		Criteria:      criteria,
	}
	for _, l := range listings {
		page.Cards = append(page.Cards, NewCardView(l))
	}
	return e.templates.ExecuteTemplate(w, "collection.html", page)
}

// RenderDetail looks the listing up in the full store and renders its
// detail view. Unknown ids return ErrNotFound without writing anything.
func (e *Engine) RenderDetail(w io.Writer, src ListingSource, id int64) error {
	l, ok := src.Get(id)
	if !ok {
		return ErrNotFound
	}
	return e.templates.ExecuteTemplate(w, "detail.html", NewDetailView(l))
}
