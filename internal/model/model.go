// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Listing represents a single domain name offered in the portfolio.
// Listings are built once at startup and never modified afterwards.
type Listing struct {
	ID              int64
	Name            string
	Price           float64 // currency units, non-negative
	Category        string
	Extension       string // TLD without the leading dot
	Length          int    // stored as-is, not derived from Name
	Age             int    // years
	Traffic         int    // monthly visits
	Description     string
	OwnerNotes      string
	Keywords        []string
	AcquisitionYear int
	Featured        bool // display badge only; no filter or sort reads it
}

// Criteria holds one filter invocation's active dimensions.
// An empty field is a wildcard for that dimension.
type Criteria struct {
	Category   string
	Extension  string
	PriceToken string // compact form "<min>-<max>" or "<min>+"
	Search     string
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c.Category == "" && c.Extension == "" && c.PriceToken == "" && c.Search == ""
}

// PriceRange is a parsed price criterion. Max is nil for open-ended
// ranges ("30000+").
type PriceRange struct {
	Min float64
	Max *float64
}

// Contains reports whether price falls inside the range, bounds inclusive.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// Chat message roles.
const (
	RoleUser  = "user"
	RoleOwner = "owner"
)

// ChatMessage is one entry in a negotiation transcript.
type ChatMessage struct {
	ID     uuid.UUID `json:"id"`
	Role   string    `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}
