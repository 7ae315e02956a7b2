package api

import "testing"

func TestQueryOmitsEmptyFilters(t *testing.T) {
	v := ActivityQuery{}.Values()

	for _, key := range []string{"search", "status", "priority", "category"} {
		if v.Has(key) {
			t.Errorf("empty filter %q should be omitted, got %q", key, v.Get(key))
		}
	}
}

func TestQueryIncludesSetFilters(t *testing.T) {
	q := ActivityQuery{
		Search:   "rent",
		Status:   "pending",
		Priority: "high",
		Category: "finance",
	}
	v := q.Values()

	cases := map[string]string{
		"search":   "rent",
		"status":   "pending",
		"priority": "high",
		"category": "finance",
	}
	for key, want := range cases {
		if got := v.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestQuerySortAndPaginationDefaults(t *testing.T) {
	v := ActivityQuery{}.Values()

	if got := v.Get("sort_by"); got != "deadline" {
		t.Errorf("sort_by = %q, want deadline", got)
	}
	if got := v.Get("sort_order"); got != "asc" {
		t.Errorf("sort_order = %q, want asc", got)
	}
	if got := v.Get("page"); got != "1" {
		t.Errorf("page = %q, want 1", got)
	}
	if got := v.Get("page_size"); got != "50" {
		t.Errorf("page_size = %q, want 50", got)
	}
}

func TestQueryExplicitSortAndPage(t *testing.T) {
	q := ActivityQuery{
		SortBy:    "priority",
		SortOrder: "desc",
		Page:      3,
		PageSize:  25,
	}
	v := q.Values()

	if got := v.Get("sort_by"); got != "priority" {
		t.Errorf("sort_by = %q, want priority", got)
	}
	if got := v.Get("sort_order"); got != "desc" {
		t.Errorf("sort_order = %q, want desc", got)
	}
	if got := v.Get("page"); got != "3" {
		t.Errorf("page = %q, want 3", got)
	}
	if got := v.Get("page_size"); got != "25" {
		t.Errorf("page_size = %q, want 25", got)
	}
}

func TestQueryDeterministic(t *testing.T) {
	q := ActivityQuery{Search: "a", Status: "missed", Page: 2, PageSize: 10}
	first := q.Values().Encode()
	second := q.Values().Encode()
	if first != second {
		t.Fatalf("encoding not deterministic: %q vs %q", first, second)
	}
}

func TestQueryClampsPageBelowOne(t *testing.T) {
	v := ActivityQuery{Page: -4}.Values()
	if got := v.Get("page"); got != "1" {
		t.Errorf("page = %q, want 1", got)
	}
}
