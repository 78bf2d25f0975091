// Package chat simulates the owner side of a domain negotiation.
package chat

import (
	"fmt"
	"strings"
	"sync"
)

// RandomSource supplies the randomness for fallback replies. *rand.Rand
// satisfies it; tests inject a seeded or stubbed source.
type RandomSource interface {
	Intn(n int) int
}

// Rule maps trigger keywords to a fixed reply. A rule matches when any of
// its keywords appears in the lowercased message.
type Rule struct {
	Keywords []string
	Reply    string
}

// DefaultRules returns the owner's canned negotiation rules. Order matters:
// rules are evaluated top to bottom and the first match wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"price", "cost"},
			Reply:    "I'm always open to reasonable offers. What price range were you thinking?",
		},
		{
			Keywords: []string{"domain"},
			Reply:    "Which domain caught your attention? I'd love to share its story with you.",
		},
		{
			Keywords: []string{"buy", "purchase"},
			Reply:    "Great! We can use Escrow.com for a secure transaction. Would you like me to explain the process?",
		},
	}
}

// DefaultFallbacks returns the generic replies used when no rule matches.
func DefaultFallbacks() []string {
	return []string{
		"Thanks for your interest! Which domain are you looking at?",
		"I'd be happy to discuss pricing. What's your budget range?",
		"That's a great domain choice! Let me tell you why it's special...",
		"I can work with you on the price. What did you have in mind?",
		"Would you like to set up a call to discuss this further?",
		"I've had several inquiries about that one. It's definitely in demand!",
		"Happy to provide more details about the domain's history and potential.",
	}
}

// Responder selects a reply for an incoming message. It is safe for
// concurrent use; the fallback draw is the only guarded state.
type Responder struct {
	rules     []Rule
	fallbacks []string

	mu  sync.Mutex
	rng RandomSource
}

// NewResponder creates a responder over the given rule table, fallback pool
// and random source.
func NewResponder(rules []Rule, fallbacks []string, rng RandomSource) *Responder {
	return &Responder{rules: rules, fallbacks: fallbacks, rng: rng}
}

// Respond returns the reply for message: the first rule whose keywords
// match (case-insensitive substring), or a uniformly random fallback.
func (r *Responder) Respond(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Reply
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[r.rng.Intn(len(r.fallbacks))]
}

// Greeting returns the context message seeded into a transcript when a
// visitor opens a negotiation about a specific domain.
func Greeting(domainName string) string {
	return fmt.Sprintf("I see you're interested in %s! It's one of my favorites. What would you like to know about it?", domainName)
}
