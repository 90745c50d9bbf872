package notes

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type SaveNoteRequest struct {
	Title   string `json:"title,omitempty" mcp:"The title of the note with no markdown formatting"`
	Content string `json:"content,omitempty" mcp:"The new content for the note"`
}

type DeleteNoteRequest struct {
	Title string `json:"title,omitempty" mcp:"The title of the note to delete"`
}

func (ns *NotesServer) NewSaveNoteTool() {
	tool := mcp.NewTool(
		"save_note",
		mcp.WithDescription("Save the given note. If a note with the same title already exists, "+
			"its contents are overwritten with the new contents; otherwise a new note is created"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the note with no markdown formatting"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The new content for the note"),
		),
	)

	ns.McpServer.AddTool(tool, mcp.NewTypedToolHandler(ns.SaveNote))
}

// SaveNote creates the note or replaces the one stored under the same title
func (ns *NotesServer) SaveNote(ctx context.Context, req mcp.CallToolRequest, params SaveNoteRequest) (*mcp.CallToolResult, error) {
	if err := ns.store.Save(params.Title, params.Content); err != nil {
		return errorResult("save note", err), nil
	}

	return successResult("Note '%s' saved.", params.Title), nil
}

func (ns *NotesServer) NewDeleteNoteTool() {
	tool := mcp.NewTool(
		"delete_note",
		mcp.WithDescription("Delete a note by its title"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the note to delete"),
		),
	)

	ns.McpServer.AddTool(tool, mcp.NewTypedToolHandler(ns.DeleteNote))
}

// DeleteNote removes the note stored under the title
func (ns *NotesServer) DeleteNote(ctx context.Context, req mcp.CallToolRequest, params DeleteNoteRequest) (*mcp.CallToolResult, error) {
	if err := ns.store.Delete(params.Title); err != nil {
		return errorResult("delete note", err), nil
	}

	return successResult("Note '%s' deleted.", params.Title), nil
}
