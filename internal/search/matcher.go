// Package search provides keyword matching over the normalized record
// collection. It exposes a single capability interface, Matcher, with two
// implementations selected at startup:
//
//   - a fuzzy matcher backed by github.com/sahilm/fuzzy, tolerant of partial
//     and lightly misspelled keywords, ranked by similarity score;
//   - a case-insensitive substring matcher used as the universal fallback.
//
// Both implementations index the same field set (question, answer, details,
// key point, law section, case reference, tags, keywords) and are immutable
// after construction, so a Matcher is safe for concurrent use. No logging
// happens in this package; callers decide how to surface degradations.
package search

import (
	"strings"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// Match is a single ranked search hit.
type Match struct {
	Record domain.Record
	Score  float64
}

// Matcher is the capability interface for keyword search. Search returns
// ranked matches for a keyword; an empty or whitespace-only keyword yields
// nil. Implementations never return an error and never panic: any internal
// failure degrades to substring matching for that query only.
type Matcher interface {
	Search(keyword string) []Match
}

// Engine names a matcher implementation.
type Engine string

// Available engines. EngineFuzzy is the default.
const (
	EngineFuzzy     Engine = "fuzzy"
	EngineSubstring Engine = "substring"
)

// New builds a Matcher over records using the requested engine. Unknown
// engine names fall back to the substring matcher, mirroring the behavior
// when no fuzzy engine is available at all.
func New(records []domain.Record, engine Engine, opts ...Option) Matcher {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	switch engine {
	case EngineFuzzy:
		return newFuzzyMatcher(records, cfg)
	default:
		return newSubstringMatcher(records)
	}
}

// Option configures matcher construction.
type Option func(*config)

type config struct {
	minScore int
}

func defaultConfig() config {
	return config{minScore: 0}
}

// WithMinScore drops fuzzy matches scoring below n. The default of 0 filters
// out negative scores, which the engine assigns to scattered, low-quality
// character matches.
func WithMinScore(n int) Option {
	return func(c *config) { c.minScore = n }
}

// haystack flattens the searchable fields of a record into a single
// lowercased string. Tag and keyword sequences are space-joined, matching
// the substring containment contract.
func haystack(r domain.Record) string {
	parts := []string{
		r.Question,
		r.Answer,
		r.Details,
		r.KeyPoint,
		r.LawSection,
		r.CaseReference,
		strings.Join(r.Tags, " "),
		strings.Join(r.Keywords, " "),
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}
