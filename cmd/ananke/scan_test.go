package main

import "testing"

func TestMatchesFiltersExcludeWins(t *testing.T) {
	if matchesFilters("vendor/pkg/file.go", nil, []string{"vendor/**"}) {
		t.Fatal("expected exclude to win over default include-all")
	}
}

func TestMatchesFiltersNoIncludeMeansIncludeAll(t *testing.T) {
	if !matchesFilters("internal/foo/bar.go", nil, nil) {
		t.Fatal("expected no filters to include everything")
	}
}

func TestMatchesFiltersIncludeRestrictsToPattern(t *testing.T) {
	if matchesFilters("internal/foo/bar.py", []string{"**/*.go"}, nil) {
		t.Fatal("expected non-matching include pattern to exclude file")
	}
	if !matchesFilters("internal/foo/bar.go", []string{"**/*.go"}, nil) {
		t.Fatal("expected matching include pattern to include file")
	}
}
