package catalog

import "testing"

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	if got := len(Filter("", "", "")); got != len(Products) {
		t.Fatalf("expected %d products, got %d", len(Products), got)
	}
}

func TestFilterBySearchTerm(t *testing.T) {
	result := Filter("rose", "", "")
	if len(result) == 0 {
		t.Fatal("expected a match for \"rose\"")
	}
	found := false
	for _, p := range result {
		if p.Name == "Rose Absolute" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected Rose Absolute in results")
	}

	if got := Filter("ROSE", "", ""); len(got) != len(result) {
		t.Fatal("search must be case-insensitive")
	}
}

func TestFilterByCategory(t *testing.T) {
	for _, p := range Filter("", "eau-de-parfum", "") {
		if p.Category != "eau-de-parfum" {
			t.Fatalf("unexpected category %q", p.Category)
		}
	}
}

func TestFiltersCompose(t *testing.T) {
	result := Filter("", "eau-de-parfum", "floral")
	if len(result) == 0 {
		t.Fatal("expected floral eau-de-parfum matches")
	}
	for _, p := range result {
		if p.Category != "eau-de-parfum" || p.ScentFamily != "floral" {
			t.Fatalf("filter leak: %+v", p)
		}
	}
}

func TestFilterNoMatch(t *testing.T) {
	if got := Filter("nonexistent perfume", "", ""); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID(1)
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if p.Name != "Rose Absolute" || p.Price != 2500 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, ok := ByID(999); ok {
		t.Fatal("expected no product for id 999")
	}
}
