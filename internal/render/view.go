package render

import (
	"github.com/dustin/go-humanize"

	"github.com/cbaxter/domainfolio/internal/model"
)

// CardView is the structured projection of a listing onto a catalog card.
// Templates consume these plain view models; all listing-sourced text is
// escaped by html/template at execution time.
type CardView struct {
	ID          int64
	Name        string
	PriceLabel  string
	Category    string
	Description string
	Featured    bool

	// The four labeled stats on every card.
	AgeYears       int
	MonthlyTraffic int
	Characters     int
	Extension      string // dotted, e.g. ".com"
}

// DetailView is the expanded single-listing projection.
type DetailView struct {
	CardView
	AcquisitionYear int
	OwnerNotes      string
	Keywords        []string
}

// PageView is everything the collection page needs: the visible cards,
// the filter options and an echo of the active criteria.
type PageView struct {
	Cards         []CardView
	Count         int
	Categories    []string
	Extensions    []string
	PriceBrackets []PriceBracket
	Criteria      model.Criteria
}

// PriceBracket pairs a filter token with its display label.
type PriceBracket struct {
	Token string `json:"token"`
	Label string `json:"label"`
}

// DefaultPriceBrackets returns the fixed price filter options.
func DefaultPriceBrackets() []PriceBracket {
	return []PriceBracket{
		{Token: "0-15000", Label: "Under $15,000"},
		{Token: "15000-30000", Label: "$15,000 - $30,000"},
		{Token: "30000+", Label: "$30,000+"},
	}
}

// NewCardView projects a listing onto its card representation.
func NewCardView(l model.Listing) CardView {
	return CardView{
		ID:             l.ID,
		Name:           l.Name,
		PriceLabel:     FormatPrice(l.Price),
		Category:       l.Category,
		Description:    l.Description,
		Featured:       l.Featured,
		AgeYears:       l.Age,
		MonthlyTraffic: l.Traffic,
		Characters:     l.Length,
		Extension:      "." + l.Extension,
	}
}

// NewDetailView projects a listing onto its detail representation.
func NewDetailView(l model.Listing) DetailView {
	return DetailView{
		CardView:        NewCardView(l),
		AcquisitionYear: l.AcquisitionYear,
		OwnerNotes:      l.OwnerNotes,
		Keywords:        l.Keywords,
	}
}

// FormatPrice renders a price with grouped thousands, e.g. "$25,000".
func FormatPrice(price float64) string {
	return "$" + humanize.Commaf(price)
}
