package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// Facets are the derived distinct filter choices of a record collection,
// ready for building filter controls.
type Facets struct {
	// Sections lists distinct non-empty law sections, collated for Bengali.
	Sections []string `json:"sections"`
	// Years lists distinct years, newest first.
	Years []int `json:"years"`
	// Tags lists distinct tags flattened across all records, collated.
	Tags []string `json:"tags"`
}

// ExtractFacets recomputes the facet sets from a normalized collection.
// It runs once per data load; the result is immutable afterwards.
//
// String facets use locale-aware Bengali collation so that section names and
// tags written in Bengali script sort the way a reader expects, not by code
// point. A collator is created per call: collate.Collator carries internal
// buffers and is not safe for concurrent use.
func ExtractFacets(records []domain.Record) Facets {
	sectionSet := make(map[string]struct{})
	yearSet := make(map[int]struct{})
	tagSet := make(map[string]struct{})

	for _, r := range records {
		if r.LawSection != "" {
			sectionSet[r.LawSection] = struct{}{}
		}
		if r.Year != nil {
			yearSet[*r.Year] = struct{}{}
		}
		for _, t := range r.Tags {
			tagSet[t] = struct{}{}
		}
	}

	f := Facets{
		Sections: make([]string, 0, len(sectionSet)),
		Years:    make([]int, 0, len(yearSet)),
		Tags:     make([]string, 0, len(tagSet)),
	}
	for s := range sectionSet {
		f.Sections = append(f.Sections, s)
	}
	for y := range yearSet {
		f.Years = append(f.Years, y)
	}
	for t := range tagSet {
		f.Tags = append(f.Tags, t)
	}

	c := collate.New(language.Bengali)
	c.SortStrings(f.Sections)
	c.SortStrings(f.Tags)
	sort.Sort(sort.Reverse(sort.IntSlice(f.Years)))
	return f
}

// NewCollator returns a fresh Bengali collator for the az/section sorts of
// the browse pipeline. Callers must not share one collator across goroutines.
func NewCollator() *collate.Collator {
	return collate.New(language.Bengali)
}
