package app

import "github.com/jwulff/whisper-export/internal/export"

// DecisionsLoadedMsg carries the classified session list from the engine.
type DecisionsLoadedMsg struct {
	Decisions []export.Decision
}

// LoadErrorMsg is sent when loading sessions or state fails.
type LoadErrorMsg struct {
	Err error
}

// ExportDoneMsg carries the statistics of a completed export run.
type ExportDoneMsg struct {
	Stats export.Stats
}

// ExportErrorMsg is sent when an export run fails partway.
type ExportErrorMsg struct {
	Err error
}
