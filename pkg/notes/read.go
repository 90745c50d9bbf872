package notes

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type GetNoteRequest struct {
	Title string `json:"title,omitempty" mcp:"The title of the note to get"`
}

func (ns *NotesServer) NewGetNoteTool() {
	tool := mcp.NewTool(
		"get_note",
		mcp.WithDescription("Get a note by its title. Returns a JSON object with the title and content of the note"),
		mcp.WithString("title", mcp.Description("The title of the note to get"), mcp.Required()),
	)

	ns.McpServer.AddTool(tool, mcp.NewTypedToolHandler(ns.GetNote))
}

// GetNote returns the stored record for a title as JSON
func (ns *NotesServer) GetNote(ctx context.Context, req mcp.CallToolRequest, params GetNoteRequest) (*mcp.CallToolResult, error) {
	note, err := ns.store.Get(params.Title)
	if err != nil {
		return errorResult("get note", err), nil
	}

	return jsonResult("get note", note), nil
}
