// Package mcp exposes the exporter over the Model Context Protocol so
// agents can trigger exports and inspect pending sessions via stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jwulff/whisper-export/internal/export"
	"github.com/jwulff/whisper-export/internal/note"
)

// sessionInfo is the JSON shape returned by the list_sessions tool.
type sessionInfo struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Action   string `json:"action"`
	Filename string `json:"filename,omitempty"`
}

// NewServer builds the MCP server around an export engine.
func NewServer(engine *export.Engine, version string) *server.MCPServer {
	s := server.NewMCPServer("whisper-export", version,
		server.WithToolCapabilities(false),
	)

	exportTool := mcp.NewTool("export_notes",
		mcp.WithDescription("Export new and updated MacWhisper transcription sessions to markdown notes. Returns a one-line summary of the run."),
	)
	s.AddTool(exportTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := engine.Run()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
		}
		return mcp.NewToolResultText(stats.Summary()), nil
	})

	listTool := mcp.NewTool("list_sessions",
		mcp.WithDescription("List transcription sessions with the action the next export would take for each (new, updated or skipped)."),
	)
	s.AddTool(listTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		decisions, err := engine.Review()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}

		infos := make([]sessionInfo, 0, len(decisions))
		for _, d := range decisions {
			infos = append(infos, sessionInfo{
				ID:       d.Session.ID,
				Date:     note.Date(d.Session),
				Title:    note.Title(d.Session),
				Action:   d.Action.String(),
				Filename: d.PriorFilename,
			})
		}

		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("marshal sessions: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	})

	return s
}

// Serve runs the server on stdio until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
