package domain

import (
	"net/url"
	"strings"
	"testing"
)

func TestParseQuery_AllFields(t *testing.T) {
	v := url.Values{}
	v.Set("q", "  জামিন ")
	v.Set("section", "ধারা ৪৯৭")
	v.Set("year", "2019")
	v.Set("tags", "ফৌজদারি, জামিন ,")
	v.Set("sort", "newest")
	v.Set("bookmarks", "true")

	q := ParseQuery(v)
	if q.Keyword != "জামিন" {
		t.Fatalf("keyword: %q", q.Keyword)
	}
	if q.Section != "ধারা ৪৯৭" {
		t.Fatalf("section: %q", q.Section)
	}
	if q.Year == nil || *q.Year != 2019 {
		t.Fatalf("year: %v", q.Year)
	}
	if len(q.Tags) != 2 || q.Tags[0] != "ফৌজদারি" || q.Tags[1] != "জামিন" {
		t.Fatalf("tags: %v", q.Tags)
	}
	if q.Sort != SortNewest {
		t.Fatalf("sort: %v", q.Sort)
	}
	if !q.BookmarksOnly {
		t.Fatalf("bookmarks flag not set")
	}
}

func TestParseQuery_FailSoft(t *testing.T) {
	v := url.Values{}
	v.Set("year", "not-a-number")
	v.Set("sort", "garbage")
	v.Set("bookmarks", "TRUE") // exact "true" required

	q := ParseQuery(v)
	if q.Year != nil {
		t.Fatalf("malformed year should be dropped, got %v", *q.Year)
	}
	if q.Sort != SortRelevance {
		t.Fatalf("unknown sort should fall back to relevance, got %v", q.Sort)
	}
	if q.BookmarksOnly {
		t.Fatalf("bookmarks should require exact 'true'")
	}
	if !q.IsZero() {
		t.Fatalf("expected zero state, got %+v", q)
	}
}

func TestQueryState_RoundTrip(t *testing.T) {
	year := 2020
	in := QueryState{
		Keyword:       "তালাক",
		Section:       "ধারা ১২৫",
		Year:          &year,
		Tags:          []string{"পারিবারিক", "ভরণপোষণ"},
		Sort:          SortAZ,
		BookmarksOnly: true,
	}

	out := ParseQuery(in.Values())
	if out.Keyword != in.Keyword || out.Section != in.Section {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
	if out.Year == nil || *out.Year != year {
		t.Fatalf("year round trip: %v", out.Year)
	}
	if len(out.Tags) != 2 || out.Tags[0] != in.Tags[0] || out.Tags[1] != in.Tags[1] {
		t.Fatalf("tags round trip: %v", out.Tags)
	}
	if out.Sort != SortAZ || !out.BookmarksOnly {
		t.Fatalf("flags round trip: %+v", out)
	}
}

func TestQueryState_Encode_OmitsDefaults(t *testing.T) {
	if got := (QueryState{}).Encode(); got != "" {
		t.Fatalf("zero state should encode empty, got %q", got)
	}
	if got := (QueryState{Sort: SortRelevance}).Encode(); got != "" {
		t.Fatalf("relevance sort should be omitted, got %q", got)
	}
	got := QueryState{Keyword: "x", Sort: SortSection}.Encode()
	if got != "q=x&sort=section" {
		t.Fatalf("encode: %q", got)
	}
}

func TestClipKeyword(t *testing.T) {
	short := "অভিযোগ"
	if ClipKeyword(short) != short {
		t.Fatalf("short keyword must pass through")
	}
	long := strings.Repeat("ক", MaxKeywordRunes+50)
	clipped := ClipKeyword(long)
	if n := len([]rune(clipped)); n != MaxKeywordRunes {
		t.Fatalf("clipped to %d runes, want %d", n, MaxKeywordRunes)
	}
}

func TestShareQuery(t *testing.T) {
	if got := ShareQuery(42); got != "id=42" {
		t.Fatalf("share query: %q", got)
	}
}
