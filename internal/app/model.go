// Package app implements the interactive session browser: a list of
// transcription sessions with their pending export action, and a key to
// run the export in place.
package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/whisper-export/internal/export"
	"github.com/jwulff/whisper-export/internal/note"
	"github.com/jwulff/whisper-export/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// sessionRow holds one session for display in the list.
type sessionRow struct {
	Decision export.Decision
	Expanded bool
}

// Model is the root bubbletea model for the exporter TUI.
type Model struct {
	engine *export.Engine

	// Session list
	rows     []sessionRow
	selected int
	scroll   int

	// Run state
	loading   bool
	exporting bool
	lastRun   string

	// UI state
	width  int
	height int

	// Errors
	errorMessage string

	statusText string
}

// New creates a Model backed by the given engine.
func New(engine *export.Engine) Model {
	return Model{
		engine:     engine,
		loading:    true,
		statusText: "Loading sessions...",
	}
}

// Init returns the initial command — classify all sessions.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.engine)
}

// loadCmd classifies every session against the current export state.
func loadCmd(engine *export.Engine) tea.Cmd {
	return func() tea.Msg {
		decisions, err := engine.Review()
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		return DecisionsLoadedMsg{Decisions: decisions}
	}
}

// exportCmd runs one export.
func exportCmd(engine *export.Engine) tea.Cmd {
	return func() tea.Msg {
		stats, err := engine.Run()
		if err != nil {
			return ExportErrorMsg{Err: err}
		}
		return ExportDoneMsg{Stats: stats}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DecisionsLoadedMsg:
		m.loading = false
		m.rows = m.rows[:0]
		for _, d := range msg.Decisions {
			m.rows = append(m.rows, sessionRow{Decision: d})
		}
		if m.selected >= len(m.rows) {
			m.selected = max(0, len(m.rows)-1)
		}
		m.statusText = ""
		return m, nil

	case LoadErrorMsg:
		m.loading = false
		m.errorMessage = msg.Err.Error()
		return m, nil

	case ExportDoneMsg:
		m.exporting = false
		m.lastRun = msg.Stats.Summary()
		m.errorMessage = ""
		// Reclassify so badges flip to SYNCED
		return m, loadCmd(m.engine)

	case ExportErrorMsg:
		m.exporting = false
		m.errorMessage = msg.Err.Error()
		return m, loadCmd(m.engine)
	}

	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		return m, tea.Quit

	case KeyJ, KeyDown:
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
		return m, nil

	case KeyK, KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case KeyEnter:
		if m.selected < len(m.rows) {
			m.rows[m.selected].Expanded = !m.rows[m.selected].Expanded
		}
		return m, nil

	case KeyExport, KeyExportUp:
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.statusText = "Exporting..."
		return m, exportCmd(m.engine)

	case KeyReload, KeyReloadUp:
		m.loading = true
		m.statusText = "Loading sessions..."
		return m, loadCmd(m.engine)
	}

	return m, nil
}

// pending counts rows that would be written by the next run.
func (m Model) pending() (newCount, updatedCount int) {
	for _, r := range m.rows {
		switch r.Decision.Action {
		case export.ActionNew:
			newCount++
		case export.ActionUpdate:
			updatedCount++
		}
	}
	return
}

func (m Model) listVisibleLines() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + status(1) + divider(1) + error(1) + footer(1) + padding
	reserved := 6
	return max(5, m.height-reserved)
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderList())
	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	return ui.TitleStyle.Render("WHISPER EXPORT") +
		ui.DimStyle.Render("  — MacWhisper sessions → markdown notes")
}

func (m Model) renderStatusBar() string {
	if m.loading {
		return ui.StatusStyle.Render(m.statusText)
	}
	newCount, updatedCount := m.pending()
	parts := []string{
		ui.BadgeNewStyle.Render("new") + ui.StatusStyle.Render(": "+strconv.Itoa(newCount)),
		ui.BadgeUpdatedStyle.Render("updated") + ui.StatusStyle.Render(": "+strconv.Itoa(updatedCount)),
		ui.StatusStyle.Render("sessions: " + strconv.Itoa(len(m.rows))),
	}
	line := strings.Join(parts, "  ")
	if m.exporting {
		line += "  " + ui.StatusStyle.Render(m.statusText)
	} else if m.lastRun != "" {
		line += "  " + ui.DimStyle.Render(m.lastRun)
	}
	return line
}

func (m Model) renderList() string {
	height := m.listVisibleLines()

	var lines []string
	if m.loading {
		lines = append(lines, ui.DimStyle.Render("  Loading..."))
	} else if len(m.rows) == 0 {
		lines = append(lines, ui.DimStyle.Render("  No sessions found in the database."))
	} else {
		lines = m.renderRows()
	}

	// Keep the selected row in view
	start := 0
	if m.selectedLine() >= height {
		start = m.selectedLine() - height + 1
	}
	if start > 0 && start < len(lines) {
		lines = lines[start:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// selectedLine returns the display line index of the selected row,
// accounting for expanded summaries above it.
func (m Model) selectedLine() int {
	line := 0
	for i := 0; i < m.selected && i < len(m.rows); i++ {
		line++
		if m.rows[i].Expanded {
			line += len(m.summaryLines(m.rows[i]))
		}
	}
	return line
}

func (m Model) renderRows() []string {
	var lines []string
	for i, row := range m.rows {
		d := row.Decision
		badge := actionBadge(d.Action)
		date := note.Date(d.Session)
		title := note.Title(d.Session)

		line := "  " + badge + " " + ui.DimStyle.Render(date) + "  " + title
		if i == m.selected {
			line = ui.SelectedStyle.Render("> ") + badge + " " + ui.DimStyle.Render(date) + "  " + ui.SelectedStyle.Render(title)
		}
		lines = append(lines, truncateToWidth(line, m.width))

		if row.Expanded {
			for _, wl := range m.summaryLines(row) {
				lines = append(lines, ui.DimStyle.Render("      "+wl))
			}
		}
	}
	return lines
}

// summaryLines wraps the session's AI summary for inline display.
func (m Model) summaryLines(row sessionRow) []string {
	s := row.Decision.Session.AISummary
	if s == nil || strings.TrimSpace(*s) == "" {
		return []string{"(no summary)"}
	}
	return wrapText(strings.TrimSpace(*s), max(10, m.width-8))
}

func actionBadge(a export.Action) string {
	switch a {
	case export.ActionNew:
		return ui.BadgeNewStyle.Render("[NEW]    ")
	case export.ActionUpdate:
		return ui.BadgeUpdatedStyle.Render("[UPDATED]")
	default:
		return ui.BadgeSyncedStyle.Render("[SYNCED] ")
	}
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	parts := []string{
		ui.FooterKeyStyle.Render("e") + ui.FooterDescStyle.Render(" Export"),
		ui.FooterKeyStyle.Render("r") + ui.FooterDescStyle.Render(" Reload"),
		ui.FooterKeyStyle.Render("j/k") + ui.FooterDescStyle.Render(" Nav"),
		ui.FooterKeyStyle.Render("Enter") + ui.FooterDescStyle.Render(" Summary"),
		ui.FooterKeyStyle.Render("q") + ui.FooterDescStyle.Render(" Quit"),
	}
	return strings.Join(parts, "  ")
}

// Helpers

func truncateToWidth(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible <= width {
		return s
	}
	// Simple truncation for non-styled strings
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
