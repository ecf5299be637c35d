package note

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Standup", "Standup"},
		{"unsafe chars", `a/b\c:d*e?f"g<h>i|j`, "a-b-c-d-e-f-g-h-i-j"},
		{"whitespace collapses", "a  b\t c\n\nd", "a b c d"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.title); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("x", 300)
	got := Sanitize(long)
	if len([]rune(got)) != 200 {
		t.Errorf("Sanitize length = %d, want 200", len([]rune(got)))
	}
}

func TestResolveNoCollision(t *testing.T) {
	claimed := ClaimedNames{}
	got := Resolve("2024-01-01", "Standup", claimed)
	if got != "2024-01-01 Standup.md" {
		t.Errorf("Resolve = %q, want %q", got, "2024-01-01 Standup.md")
	}
	if !claimed.Claimed(got) {
		t.Error("Resolve should claim the chosen name")
	}
}

func TestResolveCollisions(t *testing.T) {
	claimed := ClaimedNames{}

	first := Resolve("2024-01-01", "Standup", claimed)
	second := Resolve("2024-01-01", "Standup", claimed)
	third := Resolve("2024-01-01", "Standup", claimed)

	if first != "2024-01-01 Standup.md" {
		t.Errorf("first = %q", first)
	}
	if second != "2024-01-01 Standup (2).md" {
		t.Errorf("second = %q, want %q", second, "2024-01-01 Standup (2).md")
	}
	if third != "2024-01-01 Standup (3).md" {
		t.Errorf("third = %q, want %q", third, "2024-01-01 Standup (3).md")
	}
}

func TestResolveAgainstSeededNames(t *testing.T) {
	claimed := ClaimedNames{}
	claimed.Claim("2024-01-01 Standup.md")

	got := Resolve("2024-01-01", "Standup", claimed)
	if got != "2024-01-01 Standup (2).md" {
		t.Errorf("Resolve = %q, want %q", got, "2024-01-01 Standup (2).md")
	}
}

func TestResolveSanitizesTitle(t *testing.T) {
	claimed := ClaimedNames{}
	got := Resolve("2024-01-01", "a/b: c?", claimed)
	if got != "2024-01-01 a-b- c-.md" {
		t.Errorf("Resolve = %q, want %q", got, "2024-01-01 a-b- c-.md")
	}
}
