// Package export implements the incremental sync engine that reconciles
// the live session set against the persisted export state and writes
// markdown notes for anything new or changed.
package export

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jwulff/whisper-export/internal/db"
	"github.com/jwulff/whisper-export/internal/note"
	"github.com/jwulff/whisper-export/internal/state"
)

// Source yields the current session records. *db.Store satisfies this;
// tests use an in-memory fake.
type Source interface {
	Sessions() ([]db.Session, error)
}

// Action classifies what the engine will do with one session.
type Action int

const (
	ActionNew Action = iota
	ActionUpdate
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionUpdate:
		return "updated"
	case ActionSkip:
		return "skipped"
	}
	return "unknown"
}

// Decision pairs a session with the action a run would take for it.
type Decision struct {
	Session       db.Session
	Action        Action
	PriorFilename string
}

// Stats summarizes one export run.
type Stats struct {
	New     int
	Updated int
	Skipped int
	Total   int
}

// Summary returns the one-line, human-readable run report.
func (s Stats) Summary() string {
	return fmt.Sprintf("Done: %d new, %d updated, %d skipped (total %d sessions)",
		s.New, s.Updated, s.Skipped, s.Total)
}

// Engine performs one synchronous export run at a time. It owns the
// transition logic; the state package owns persistence of the mapping.
type Engine struct {
	source    Source
	outputDir string
	statePath string
	logger    *log.Logger
}

// New creates an Engine. If logger is nil, per-file progress is discarded
// and only the caller's summary is visible.
func New(source Source, outputDir, statePath string, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		source:    source,
		outputDir: outputDir,
		statePath: statePath,
		logger:    logger,
	}
}

// classify decides the action for one session given its prior state entry.
func classify(prev state.Entry, seen bool, dateUpdated string) Action {
	switch {
	case !seen:
		return ActionNew
	case prev.DateUpdated != dateUpdated:
		return ActionUpdate
	default:
		return ActionSkip
	}
}

// Review classifies every session against the current state without
// touching the output directory or the state file.
func (e *Engine) Review() ([]Decision, error) {
	sessions, err := e.source.Sessions()
	if err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}
	prior, err := state.Load(e.statePath)
	if err != nil {
		return nil, err
	}

	decisions := make([]Decision, 0, len(sessions))
	for _, sess := range sessions {
		prev, seen := prior[sess.ID]
		decisions = append(decisions, Decision{
			Session:       sess,
			Action:        classify(prev, seen, sess.DateUpdated),
			PriorFilename: prev.Filename,
		})
	}
	return decisions, nil
}

// Run executes one export: new and updated sessions are rendered and
// written, unchanged sessions only reserve their existing filenames, and
// the updated state is persisted at the end. Any I/O failure aborts the
// run; files already written stay in place but the state file is only
// rewritten on full success.
func (e *Engine) Run() (Stats, error) {
	sessions, err := e.source.Sessions()
	if err != nil {
		return Stats{}, fmt.Errorf("fetch sessions: %w", err)
	}
	prior, err := state.Load(e.statePath)
	if err != nil {
		return Stats{}, err
	}

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return Stats{}, fmt.Errorf("create output dir: %w", err)
	}

	next := make(map[string]state.Entry, len(prior))
	for id, entry := range prior {
		next[id] = entry
	}

	claimed := note.ClaimedNames{}
	var stats Stats
	stats.Total = len(sessions)

	for _, sess := range sessions {
		prev, seen := prior[sess.ID]
		switch classify(prev, seen, sess.DateUpdated) {
		case ActionNew:
			name, err := e.writeNote(sess, claimed)
			if err != nil {
				return stats, err
			}
			next[sess.ID] = state.Entry{DateUpdated: sess.DateUpdated, Filename: name}
			stats.New++
			e.logger.Printf("new: %s", name)

		case ActionUpdate:
			// The new title or date may resolve to a different name, so
			// the previously written file must not linger.
			if prev.Filename != "" {
				if err := e.removeNote(prev.Filename); err != nil {
					return stats, err
				}
			}
			name, err := e.writeNote(sess, claimed)
			if err != nil {
				return stats, err
			}
			next[sess.ID] = state.Entry{DateUpdated: sess.DateUpdated, Filename: name}
			stats.Updated++
			e.logger.Printf("updated: %s", name)

		case ActionSkip:
			// Reserve the existing filename so a new or renamed session in
			// this run cannot collide with it.
			if prev.Filename != "" {
				claimed.Claim(prev.Filename)
			}
			stats.Skipped++
		}
	}

	if err := state.Save(e.statePath, next); err != nil {
		return stats, err
	}
	return stats, nil
}

// writeNote renders a session and writes it under a freshly resolved name.
func (e *Engine) writeNote(sess db.Session, claimed note.ClaimedNames) (string, error) {
	name := note.Resolve(note.Date(sess), note.Title(sess), claimed)
	content := note.Render(sess)
	if err := os.WriteFile(filepath.Join(e.outputDir, name), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write note %s: %w", name, err)
	}
	return name, nil
}

// removeNote deletes a previously exported file if it still exists.
func (e *Engine) removeNote(name string) error {
	path := filepath.Join(e.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat old note %s: %w", name, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove old note %s: %w", name, err)
	}
	return nil
}
