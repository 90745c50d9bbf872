package notes

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListNotesRequest struct{}

type ListNoteTitlesRequest struct{}

func (ns *NotesServer) NewListNotesTool() {
	tool := mcp.NewTool(
		"list_notes",
		mcp.WithDescription("Get a list of all notes with their file names, titles and contents"),
	)
	ns.McpServer.AddTool(tool, mcp.NewTypedToolHandler(ns.ListNotes))
}

// ListNotes returns every stored note as a JSON array
func (ns *NotesServer) ListNotes(ctx context.Context, req mcp.CallToolRequest, params ListNotesRequest) (*mcp.CallToolResult, error) {
	notes, err := ns.store.ListAll()
	if err != nil {
		return errorResult("list notes", err), nil
	}

	return jsonResult("list notes", notes), nil
}

func (ns *NotesServer) NewListNoteTitlesTool() {
	tool := mcp.NewTool(
		"list_note_titles",
		mcp.WithDescription("Get a list of all note titles"),
	)

	ns.McpServer.AddTool(tool, mcp.NewTypedToolHandler(ns.ListNoteTitles))
}

// ListNoteTitles returns the title of every stored note as a JSON array
func (ns *NotesServer) ListNoteTitles(ctx context.Context, req mcp.CallToolRequest, params ListNoteTitlesRequest) (*mcp.CallToolResult, error) {
	titles, err := ns.store.ListTitles()
	if err != nil {
		return errorResult("list note titles", err), nil
	}

	return jsonResult("list note titles", titles), nil
}
