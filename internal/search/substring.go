package search

import (
	"strings"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// substringMatcher is the fallback Matcher: case-insensitive containment of
// the (length-capped) keyword in at least one indexed field. It preserves
// collection order and assigns no meaningful score.
type substringMatcher struct {
	records   []domain.Record
	haystacks []string
}

func newSubstringMatcher(records []domain.Record) *substringMatcher {
	hs := make([]string, len(records))
	for i, r := range records {
		hs[i] = haystack(r)
	}
	return &substringMatcher{records: records, haystacks: hs}
}

// Search returns the records containing keyword as a case-insensitive
// substring, in collection order. It never fails; an empty keyword yields nil.
func (m *substringMatcher) Search(keyword string) []Match {
	k := strings.ToLower(strings.TrimSpace(domain.ClipKeyword(keyword)))
	if k == "" {
		return nil
	}
	var out []Match
	for i, h := range m.haystacks {
		if strings.Contains(h, k) {
			out = append(out, Match{Record: m.records[i]})
		}
	}
	return out
}
