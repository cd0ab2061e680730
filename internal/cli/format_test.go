package cli

import (
	"testing"

	"househunt/internal/listing"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "$0"},
		{"small", 999, "$999"},
		{"thousands", 1500, "$1,500"},
		{"millions", 1250000, "$1,250,000"},
		{"cents", 99.5, "$99.50"},
		{"thousands with cents", 1234.25, "$1,234.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPrice(tt.amount); got != tt.expected {
				t.Errorf("formatPrice(%g) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxLen   int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.maxLen); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	titled := &listing.Property{Title: "Beach Hut", City: "Goa", Province: "Goa", Country: "India"}
	if got := displayTitle(titled); got != "Beach Hut" {
		t.Errorf("title = %q", got)
	}

	untitled := &listing.Property{City: "Goa", Province: "Goa", Country: "India"}
	if got := displayTitle(untitled); got != "Goa, Goa, India" {
		t.Errorf("fallback = %q", got)
	}
}
