package handlers

import (
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"no scheme", "abc123", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"extra whitespace", "  Bearer abc123  ", "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBearerToken(tt.header); got != tt.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 10},
		{"explicit values", "2", "5", 2, 5},
		{"zero page floors to 1", "0", "5", 1, 5},
		{"negative limit keeps default", "1", "-3", 1, 10},
		{"garbage input keeps defaults", "abc", "xyz", 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := parsePageLimit(tt.page, tt.limit, 10)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("parsePageLimit(%q, %q) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestPaginationWindow(t *testing.T) {
	// 7 items, limit 5: page 2 starts at offset 5 and holds 2 items.
	page, limit := parsePageLimit("2", "5", 10)
	skip := (page - 1) * limit
	if skip != 5 {
		t.Errorf("expected skip 5, got %d", skip)
	}
	total := 7
	remaining := total - skip
	if remaining != 2 {
		t.Errorf("expected 2 items on page 2, got %d", remaining)
	}
}
