// Package domain – query state.
//
// This file models the user-controlled browse parameters (keyword, filters,
// sort mode, bookmark-only flag) and their bidirectional mapping to the URL
// query component. The query string is the shareable representation of the
// view: parsing and encoding must round-trip so that a copied link reproduces
// the exact same result list.
package domain

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SortMode selects the ordering applied after filtering.
type SortMode string

// Supported sort modes. Relevance is the default: it preserves the search
// engine's ranking (or original collection order when no keyword is given).
const (
	SortRelevance SortMode = "relevance"
	SortNewest    SortMode = "newest"
	SortAZ        SortMode = "az"
	SortSection   SortMode = "section"
)

// MaxKeywordRunes caps the search keyword length to bound matching cost.
const MaxKeywordRunes = 200

// QueryState is the combined current value of keyword, filters, sort mode and
// bookmark-only flag. It is rebuilt from the request on every call and never
// persisted beyond the URL.
//
// Zero value means "no filtering, relevance order".
type QueryState struct {
	// Keyword is the free-text search input, capped at MaxKeywordRunes.
	Keyword string
	// Section filters on exact law_section equality; empty disables the filter.
	Section string
	// Year filters on numeric year equality; nil disables the filter.
	Year *int
	// Tags lists required tags; a record must carry all of them.
	Tags []string
	// Sort selects the ordering; invalid values fall back to relevance.
	Sort SortMode
	// BookmarksOnly restricts results to the bookmarked set.
	BookmarksOnly bool
}

// ParseQuery restores a QueryState from URL query values. It is fail-soft:
// malformed values degrade to their defaults and never produce an error.
// This is the single entry point for URL → state restoration.
func ParseQuery(v url.Values) QueryState {
	q := QueryState{
		Keyword: ClipKeyword(strings.TrimSpace(v.Get("q"))),
		Section: strings.TrimSpace(v.Get("section")),
		Sort:    parseSort(v.Get("sort")),
	}
	if y := strings.TrimSpace(v.Get("year")); y != "" {
		if n, err := strconv.Atoi(y); err == nil {
			q.Year = &n
		}
	}
	if raw := v.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				q.Tags = append(q.Tags, t)
			}
		}
	}
	q.BookmarksOnly = v.Get("bookmarks") == "true"
	return q
}

// Values serializes the state into URL query values, omitting every field at
// its default/empty value so that shared links stay minimal. The inverse of
// ParseQuery.
func (q QueryState) Values() url.Values {
	v := url.Values{}
	if q.Keyword != "" {
		v.Set("q", q.Keyword)
	}
	if q.Section != "" {
		v.Set("section", q.Section)
	}
	if q.Year != nil {
		v.Set("year", strconv.Itoa(*q.Year))
	}
	if len(q.Tags) > 0 {
		v.Set("tags", strings.Join(q.Tags, ","))
	}
	if q.Sort != "" && q.Sort != SortRelevance {
		v.Set("sort", string(q.Sort))
	}
	if q.BookmarksOnly {
		v.Set("bookmarks", "true")
	}
	return v
}

// Encode returns the canonical query-string form of the state (no leading "?").
func (q QueryState) Encode() string { return q.Values().Encode() }

// IsZero reports whether the state applies no filtering at all.
func (q QueryState) IsZero() bool {
	return q.Keyword == "" && q.Section == "" && q.Year == nil &&
		len(q.Tags) == 0 && !q.BookmarksOnly &&
		(q.Sort == "" || q.Sort == SortRelevance)
}

// ClipKeyword truncates a keyword to MaxKeywordRunes runes.
func ClipKeyword(s string) string {
	if utf8.RuneCountInString(s) <= MaxKeywordRunes {
		return s
	}
	return string([]rune(s)[:MaxKeywordRunes])
}

// ShareQuery returns the canonical deep-link query for a single record.
func ShareQuery(id int) string {
	v := url.Values{}
	v.Set("id", strconv.Itoa(id))
	return v.Encode()
}

func parseSort(s string) SortMode {
	switch SortMode(strings.TrimSpace(s)) {
	case SortNewest:
		return SortNewest
	case SortAZ:
		return SortAZ
	case SortSection:
		return SortSection
	default:
		return SortRelevance
	}
}
