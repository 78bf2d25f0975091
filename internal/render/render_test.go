package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cbaxter/domainfolio/internal/catalog"
	"github.com/cbaxter/domainfolio/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{25000, "$25,000"},
		{1500, "$1,500"},
		{999, "$999"},
		{0, "$0"},
		{1234567, "$1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestNewCardView(t *testing.T) {
	l := model.Listing{
		ID:          3,
		Name:        "CloudSolutions.net",
		Price:       18500,
		Category:    "Technology",
		Extension:   "net",
		Length:      14,
		Age:         4,
		Traffic:     950,
		Description: "Great for cloud service providers and SaaS companies",
	}

	card := NewCardView(l)
	if card.PriceLabel != "$18,500" {
		t.Errorf("PriceLabel = %q", card.PriceLabel)
	}
	if card.Extension != ".net" {
		t.Errorf("Extension = %q, want dotted form", card.Extension)
	}
	if card.AgeYears != 4 || card.MonthlyTraffic != 950 || card.Characters != 14 {
		t.Errorf("stats = %d/%d/%d", card.AgeYears, card.MonthlyTraffic, card.Characters)
	}
}

func TestCardViewKeepsStoredLength(t *testing.T) {
	// Length is stored data; it is never re-derived from Name.
	l := model.Listing{ID: 1, Name: "Short.io", Length: 42, Extension: "io"}
	if card := NewCardView(l); card.Characters != 42 {
		t.Errorf("Characters = %d, want the stored 42", card.Characters)
	}
}

func TestRenderCollection(t *testing.T) {
	e := newTestEngine(t)
	store := catalog.NewStore(catalog.Seed())

	var buf bytes.Buffer
	err := e.RenderCollection(&buf, store.All(), store.Categories(), store.Extensions(), model.Criteria{})
	if err != nil {
		t.Fatalf("RenderCollection: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"TechStartup.com", "CryptoExchange.io", "$45,000", "6 domains", "Monthly Traffic"} {
		if !strings.Contains(html, want) {
			t.Errorf("collection page missing %q", want)
		}
	}
}

func TestRenderCollectionEscapesListingText(t *testing.T) {
	e := newTestEngine(t)
	hostile := []model.Listing{{
		ID:          1,
		Name:        "<script>alert('x')</script>",
		Description: `"><img src=x onerror=alert(1)>`,
		Extension:   "com",
	}}

	var buf bytes.Buffer
	if err := e.RenderCollection(&buf, hostile, nil, nil, model.Criteria{}); err != nil {
		t.Fatalf("RenderCollection: %v", err)
	}

	html := buf.String()
	if strings.Contains(html, "<script>alert") {
		t.Error("listing name was rendered unescaped")
	}
	if strings.Contains(html, "<img src=x") {
		t.Error("listing description was rendered unescaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped name not present in output")
	}
}

func TestRenderDetail(t *testing.T) {
	e := newTestEngine(t)
	store := catalog.NewStore(catalog.Seed())

	var buf bytes.Buffer
	if err := e.RenderDetail(&buf, store, 5); err != nil {
		t.Fatalf("RenderDetail: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"CryptoExchange.io",
		"$45,000",
		"Finance",
		".io",
		"2018",
		"My crown jewel!",
		"blockchain",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("detail page missing %q", want)
		}
	}
}

func TestRenderDetailNotFound(t *testing.T) {
	e := newTestEngine(t)
	store := catalog.NewStore(catalog.Seed())

	var buf bytes.Buffer
	err := e.RenderDetail(&buf, store, 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("RenderDetail(99) = %v, want ErrNotFound", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing may be written for an unknown id, got %d bytes", buf.Len())
	}
}

func TestRenderDetailReachableForFilteredOutListing(t *testing.T) {
	e := newTestEngine(t)
	store := catalog.NewStore(catalog.Seed())

	// Listing 2 fails a Technology filter, but detail lookups go against
	// the full store.
	visible := catalog.Filter(store.All(), model.Criteria{Category: "Technology"})
	for _, l := range visible {
		if l.ID == 2 {
			t.Fatal("fixture broken: listing 2 should be filtered out")
		}
	}

	var buf bytes.Buffer
	if err := e.RenderDetail(&buf, store, 2); err != nil {
		t.Fatalf("RenderDetail(2): %v", err)
	}
	if !strings.Contains(buf.String(), "DigitalMarket.org") {
		t.Error("detail page for filtered-out listing missing its name")
	}
}
