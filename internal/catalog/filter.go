package catalog

import (
	"strconv"
	"strings"

	"github.com/cbaxter/domainfolio/internal/model"
)

// Filter returns the listings satisfying every active criterion, in the
// same relative order as the input. It never mutates the input and never
// re-sorts; the result is always a subsequence of listings.
func Filter(listings []model.Listing, c model.Criteria) []model.Listing {
	priceRange, priceActive := ParsePriceRange(c.PriceToken)
	search := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if c.Category != "" && l.Category != c.Category {
			continue
		}
		if c.Extension != "" && l.Extension != c.Extension {
			continue
		}
		if priceActive && !priceRange.Contains(l.Price) {
			continue
		}
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// matchesSearch tests the lowercased term against name, description and
// every keyword.
func matchesSearch(l model.Listing, term string) bool {
	if strings.Contains(strings.ToLower(l.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Description), term) {
		return true
	}
	for _, kw := range l.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

// ParsePriceRange parses a compact price token of the form "<min>-<max>"
// or "<min>+" (open-ended upper bound). The second return is false for an
// empty or malformed token, in which case the price criterion is inactive.
func ParsePriceRange(token string) (model.PriceRange, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.PriceRange{}, false
	}

	if suffix, found := strings.CutSuffix(token, "+"); found {
		min, err := strconv.ParseFloat(strings.TrimSpace(suffix), 64)
		if err != nil {
			return model.PriceRange{}, false
		}
		return model.PriceRange{Min: min}, true
	}

	minStr, maxStr, found := strings.Cut(token, "-")
	if !found {
		return model.PriceRange{}, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(minStr), 64)
	if err != nil {
		return model.PriceRange{}, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(maxStr), 64)
	if err != nil {
		return model.PriceRange{}, false
	}
	return model.PriceRange{Min: min, Max: &max}, true
}
