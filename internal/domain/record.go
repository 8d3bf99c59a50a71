// Package domain defines the core data types of the application: the
// normalized legal Q&A record, the user-controlled query state, and the
// persistence models mapped with GORM.
package domain

// Record is one normalized question/answer legal-reference entry.
//
// Records are produced exclusively by the catalog normalizer; downstream code
// (facets, search, browse pipeline, handlers) operates only on this validated
// shape and never mutates it.
//
// Fields:
//   - ID: unique integer identifier; the deduplication key within a collection.
//   - Question / Answer: required non-empty text (enforced at normalization).
//   - Details, KeyPoint, LawSection, CaseReference, LastUpdated, Source,
//     LawReferenceLink, SerialNo: optional trimmed text, empty when absent.
//   - Tags / Keywords: ordered sequences of non-empty trimmed strings.
//   - Year: optional publication year; nil when the source value was not a
//     finite number.
//   - RelatedIDs: ids of related records; not validated for existence at
//     normalization time.
type Record struct {
	ID               int      `json:"id"`
	Question         string   `json:"question"`
	Answer           string   `json:"answer"`
	Details          string   `json:"details,omitempty"`
	KeyPoint         string   `json:"key_point,omitempty"`
	LawSection       string   `json:"law_section,omitempty"`
	CaseReference    string   `json:"case_reference,omitempty"`
	Tags             []string `json:"tags"`
	Keywords         []string `json:"keywords,omitempty"`
	Year             *int     `json:"year,omitempty"`
	LastUpdated      string   `json:"last_updated,omitempty"`
	Source           string   `json:"source,omitempty"`
	LawReferenceLink string   `json:"law_reference_link,omitempty"`
	SerialNo         string   `json:"serial_no,omitempty"`
	RelatedIDs       []int    `json:"related_ids,omitempty"`
}

// YearOrZero returns the record's year, or 0 when it is absent. Used by the
// "newest" sort, which treats missing years as older than any real year.
func (r Record) YearOrZero() int {
	if r.Year == nil {
		return 0
	}
	return *r.Year
}

// HasTag reports whether tag appears in the record's tag list.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
