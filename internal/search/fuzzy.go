package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// fuzzyMatcher adapts github.com/sahilm/fuzzy to the Matcher interface.
// Matches are ranked by the engine's similarity score (descending). Every
// fuzzyMatcher embeds a substring fallback: if the engine fails for a query,
// that query silently degrades to substring matching — the index itself is
// never rebuilt or disabled.
type fuzzyMatcher struct {
	records  []domain.Record
	source   fuzzySource
	fallback *substringMatcher
	minScore int
}

// fuzzySource implements fuzzy.Source over the flattened record texts.
type fuzzySource []string

func (s fuzzySource) String(i int) string { return s[i] }
func (s fuzzySource) Len() int            { return len(s) }

func newFuzzyMatcher(records []domain.Record, cfg config) *fuzzyMatcher {
	src := make(fuzzySource, len(records))
	for i, r := range records {
		src[i] = haystack(r)
	}
	return &fuzzyMatcher{
		records:  records,
		source:   src,
		fallback: newSubstringMatcher(records),
		minScore: cfg.minScore,
	}
}

// Search returns fuzzy matches for keyword ranked by score descending.
// A panic inside the engine is recovered and the query is answered by the
// substring fallback instead.
func (m *fuzzyMatcher) Search(keyword string) (out []Match) {
	k := strings.TrimSpace(domain.ClipKeyword(keyword))
	if k == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			out = m.fallback.Search(k)
		}
	}()

	matches := fuzzy.FindFrom(strings.ToLower(k), m.source)
	out = make([]Match, 0, len(matches))
	for _, match := range matches {
		if match.Score < m.minScore {
			continue
		}
		out = append(out, Match{
			Record: m.records[match.Index],
			Score:  float64(match.Score),
		})
	}
	return out
}
