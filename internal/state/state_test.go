package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStatePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state.json")
}

func TestLoadMissingFile(t *testing.T) {
	entries, err := Load(tempStatePath(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestRoundTrip(t *testing.T) {
	path := tempStatePath(t)

	in := map[string]Entry{
		"AABB": {DateUpdated: "2024-01-01T00:00:00", Filename: "2024-01-01 Standup.md"},
		"CCDD": {DateUpdated: "2024-02-02T12:00:00", Filename: "2024-02-02 Review.md"},
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	if out["AABB"] != in["AABB"] {
		t.Errorf("AABB = %+v, want %+v", out["AABB"], in["AABB"])
	}
	if out["CCDD"] != in["CCDD"] {
		t.Errorf("CCDD = %+v, want %+v", out["CCDD"], in["CCDD"])
	}
}

func TestLoadLegacyEntry(t *testing.T) {
	path := tempStatePath(t)
	doc := `{"exported": {"AABB": "2024-01-01T00:00:00"}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	entry, ok := entries["AABB"]
	if !ok {
		t.Fatal("legacy entry missing after load")
	}
	if entry.DateUpdated != "2024-01-01T00:00:00" {
		t.Errorf("DateUpdated = %q, want %q", entry.DateUpdated, "2024-01-01T00:00:00")
	}
	if entry.Filename != "" {
		t.Errorf("Filename = %q, want unknown (empty)", entry.Filename)
	}
}

func TestSaveMigratesLegacyEntry(t *testing.T) {
	path := tempStatePath(t)
	doc := `{"exported": {"AABB": "2024-01-01T00:00:00"}}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Save(path, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// After a load/save cycle the entry is in the structured form.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var shape struct {
		Exported map[string]json.RawMessage `json:"exported"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		t.Fatalf("unmarshal saved state: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(shape.Exported["AABB"])), "{") {
		t.Errorf("entry still in legacy form: %s", shape.Exported["AABB"])
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := tempStatePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load of corrupt file should fail")
	}
}

func TestSaveEndsWithNewline(t *testing.T) {
	path := tempStatePath(t)
	if err := Save(path, map[string]Entry{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Error("state file should end with a newline")
	}
}
