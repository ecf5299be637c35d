// Package note renders transcription sessions as Obsidian-style markdown
// notes and resolves collision-free filenames for them.
package note

import (
	"fmt"
	"strings"

	"github.com/jwulff/whisper-export/internal/db"
)

// titleFields lists the session fields considered for the note title, in
// priority order.
func titleFields(s db.Session) []*string {
	return []*string{s.UserChosenTitle, s.AITitle, s.AISummaryShort, s.OriginalFilename}
}

// Title picks the best available title for a session: the first field that
// is non-blank after trimming, falling back to "Untitled".
func Title(s db.Session) string {
	for _, f := range titleFields(s) {
		if f != nil && strings.TrimSpace(*f) != "" {
			return strings.TrimSpace(*f)
		}
	}
	return "Untitled"
}

// Date returns the date portion of the session's creation timestamp.
func Date(s db.Session) string {
	d := s.DateCreated
	if len(d) > 10 {
		d = d[:10]
	}
	return d
}

// FormatDuration converts float seconds to an HH:MM:SS string. A nil,
// zero or negative duration formats as "00:00:00".
func FormatDuration(seconds *float64) string {
	if seconds == nil || *seconds <= 0 {
		return "00:00:00"
	}
	total := int(*seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Render builds the full markdown note for a session: a frontmatter block,
// the title heading, and Summary/Transcript sections when present.
// Frontmatter keys are always emitted, with empty values for missing data.
func Render(s db.Session) string {
	title := Title(s)
	lines := []string{
		"---",
		"date: " + Date(s),
		fmt.Sprintf("duration: %q", FormatDuration(s.PlaybackDuration)),
		"language: " + deref(s.DetectedLanguage),
		"source: " + deref(s.OriginalFilename),
		"macwhisper_id: " + s.ID,
		"---",
		"",
		"# " + title,
	}

	if s.AISummary != nil && strings.TrimSpace(*s.AISummary) != "" {
		lines = append(lines, "", "## Summary", "", strings.TrimSpace(*s.AISummary))
	}
	if s.FullText != nil && strings.TrimSpace(*s.FullText) != "" {
		lines = append(lines, "", "## Transcript", "", strings.TrimSpace(*s.FullText))
	}

	lines = append(lines, "") // trailing newline
	return strings.Join(lines, "\n")
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
