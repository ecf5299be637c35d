package note

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[/\\:*?"<>|]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

const maxNameLen = 200

// ClaimedNames tracks output filenames already assigned during one export
// run. It is owned by the engine for the duration of a run and seeded with
// the filenames of sessions that are not being rewritten.
type ClaimedNames map[string]struct{}

// Claim marks a name as taken.
func (c ClaimedNames) Claim(name string) { c[name] = struct{}{} }

// Claimed reports whether a name is already taken.
func (c ClaimedNames) Claimed(name string) bool {
	_, ok := c[name]
	return ok
}

// Sanitize makes a title safe for use as a filename: filesystem-unsafe
// characters become "-", whitespace runs collapse to a single space, and
// the result is trimmed and truncated to 200 characters.
func Sanitize(title string) string {
	name := unsafeChars.ReplaceAllString(title, "-")
	name = strings.TrimSpace(whitespace.ReplaceAllString(name, " "))
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	return name
}

// Resolve picks a collision-free ".md" filename for a note titled on the
// given date, appending " (2)", " (3)", ... while the candidate is already
// claimed. The chosen name is claimed before it is returned.
func Resolve(date, title string, claimed ClaimedNames) string {
	base := Sanitize(date + " " + title)
	name := base + ".md"
	for counter := 2; claimed.Claimed(name); counter++ {
		name = fmt.Sprintf("%s (%d).md", base, counter)
	}
	claimed.Claim(name)
	return name
}
