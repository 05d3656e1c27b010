package textutil_test

import (
	"strings"
	"testing"

	"castfetch/internal/textutil"
)

func TestDisplayNameReplacesSpacesAndSlashes(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		expected string
	}{
		{"spaces", "Episode One", "Episode.One"},
		{"slashes", "AC/DC Special", "AC-DC.Special"},
		{"mixed", "Part 1/2 of the story", "Part.1-2.of.the.story"},
		{"already clean", "Episode.One", "Episode.One"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := textutil.DisplayName(tc.title, "Fallback")
			if got != tc.expected {
				t.Fatalf("DisplayName(%q) = %q, want %q", tc.title, got, tc.expected)
			}
			if strings.ContainsAny(got, " /") {
				t.Fatalf("DisplayName(%q) = %q still contains a space or slash", tc.title, got)
			}
		})
	}
}

func TestDisplayNameFallsBackToSourceName(t *testing.T) {
	if got := textutil.DisplayName("", "My Cast"); got != "My.Cast" {
		t.Fatalf("expected fallback name, got %q", got)
	}
	if got := textutil.DisplayName("   ", "MyCast"); got != "MyCast" {
		t.Fatalf("expected trimmed title to use fallback, got %q", got)
	}
}
