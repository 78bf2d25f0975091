// Package catalog provides the in-memory listing store and the filter engine.
package catalog

import (
	"github.com/cbaxter/domainfolio/internal/model"
)

// Store holds the session's listing collection. It is populated once and
// read-only afterwards; consumers receive an injected *Store rather than
// reaching for a package global.
type Store struct {
	listings []model.Listing
	byID     map[int64]int // index into listings
}

// NewStore builds a store from the given listings. The slice is copied so
// later mutation by the caller cannot leak into the store.
func NewStore(listings []model.Listing) *Store {
	s := &Store{
		listings: make([]model.Listing, len(listings)),
		byID:     make(map[int64]int, len(listings)),
	}
	copy(s.listings, listings)
	for i, l := range s.listings {
		s.byID[l.ID] = i
	}
	return s
}

// All returns every listing in insertion order. Callers must not modify
// the returned slice.
func (s *Store) All() []model.Listing {
	return s.listings
}

// Get looks up a listing by id.
func (s *Store) Get(id int64) (model.Listing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Listing{}, false
	}
	return s.listings[i], true
}

// Len returns the number of listings.
func (s *Store) Len() int {
	return len(s.listings)
}

// Categories returns the distinct categories in first-seen order.
func (s *Store) Categories() []string {
	return s.distinct(func(l model.Listing) string { return l.Category })
}

// Extensions returns the distinct extensions in first-seen order.
func (s *Store) Extensions() []string {
	return s.distinct(func(l model.Listing) string { return l.Extension })
}

func (s *Store) distinct(key func(model.Listing) string) []string {
	seen := make(map[string]struct{}, len(s.listings))
	var out []string
	for _, l := range s.listings {
		k := key(l)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
