// Package catalog owns the record collection: it loads the raw data file,
// validates and coerces it into []domain.Record at the boundary, derives the
// filter facets, builds the search matcher, and publishes everything as an
// immutable snapshot that can be swapped wholesale on reload.
package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// Normalize validates and coerces a raw JSON payload into a clean record
// collection. It fails softly: malformed input never raises — it simply
// yields fewer records, and an entirely invalid or non-array payload yields
// an empty collection. Callers distinguish "no data" from "no matches".
//
// Rules:
//   - elements that are not objects, or whose id does not coerce to an
//     integer, are skipped;
//   - the first occurrence of an id wins; later duplicates are dropped;
//   - text fields are coerced to trimmed strings, defaulting to "";
//   - year must be finite-numeric, otherwise it is absent;
//   - tags/keywords keep non-empty trimmed strings; related_ids keep
//     integers only;
//   - elements whose question or answer is empty after trimming are skipped.
func Normalize(raw []byte) []domain.Record {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}
	return NormalizeValue(parsed)
}

// NormalizeValue applies the same rules to an already-decoded value.
func NormalizeValue(v any) []domain.Record {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}

	seen := make(map[int]struct{}, len(arr))
	out := make([]domain.Record, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id, ok := coerceInt(obj["id"])
		if !ok {
			continue
		}
		// The id is claimed on first sight, even when the element is later
		// rejected for an empty question/answer. This mirrors the upstream
		// data contract: a broken entry still reserves its id.
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		r := domain.Record{
			ID:               id,
			Question:         coerceString(obj["question"]),
			Answer:           coerceString(obj["answer"]),
			Details:          coerceString(obj["details"]),
			KeyPoint:         coerceString(obj["key_point"]),
			LawSection:       coerceString(obj["law_section"]),
			CaseReference:    coerceString(obj["case_reference"]),
			Tags:             coerceStrings(obj["tags"]),
			Keywords:         coerceStrings(obj["keywords"]),
			LastUpdated:      coerceString(obj["last_updated"]),
			Source:           coerceString(obj["source"]),
			LawReferenceLink: coerceString(obj["law_reference_link"]),
			SerialNo:         coerceString(obj["serial_no"]),
			RelatedIDs:       coerceInts(obj["related_ids"]),
		}
		if y, ok := coerceInt(obj["year"]); ok {
			r.Year = &y
		}
		if r.Question == "" || r.Answer == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// coerceInt converts a decoded JSON value to an integer. Accepts integral
// numbers and numeric strings; rejects everything else.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// coerceString converts a decoded JSON value to a trimmed string. Numbers
// are formatted, anything else defaults to "".
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if s == math.Trunc(s) && !math.IsInf(s, 0) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// coerceStrings keeps the non-empty trimmed string elements of an array,
// preserving order. Non-array input yields nil.
func coerceStrings(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s := coerceString(e); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// coerceInts keeps the integer elements of an array. Unlike ids, no string
// coercion happens here: related ids must already be numbers.
func coerceInts(v any) []int {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, e := range arr {
		if n, ok := e.(float64); ok && n == math.Trunc(n) && !math.IsInf(n, 0) {
			out = append(out, int(n))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
