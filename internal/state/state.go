// Package state persists the incremental export state: a JSON document
// mapping session IDs to what was last written to disk for them.
package state

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry records what was last exported for one session. A Filename of ""
// means the filename is unknown, which only happens for entries migrated
// from the legacy format.
type Entry struct {
	DateUpdated string `json:"dateUpdated"`
	Filename    string `json:"filename"`
}

// UnmarshalJSON accepts both the current object form and the legacy form,
// where an entry was a bare dateUpdated string. Legacy entries normalize
// here, on read, so the rest of the program only sees the current shape;
// the next Save rewrites them in the current form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*e = Entry{DateUpdated: legacy}
		return nil
	}

	type entry Entry // drop methods to avoid recursion
	var cur entry
	if err := json.Unmarshal(data, &cur); err != nil {
		return err
	}
	*e = Entry(cur)
	return nil
}

// document is the on-disk shape of the state file.
type document struct {
	Exported map[string]Entry `json:"exported"`
}

// Load reads the state file. A missing file is an empty state; a present
// but unparseable file is an error.
func Load(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	if doc.Exported == nil {
		doc.Exported = map[string]Entry{}
	}
	return doc.Exported, nil
}

// Save writes the state file, replacing any previous contents.
func Save(path string, entries map[string]Entry) error {
	data, err := json.MarshalIndent(document{Exported: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
