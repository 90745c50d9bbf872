package notes

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	TitlesResourceURI = "notes://titles"
	NotesResourceURI  = "notes://all"
)

func (ns *NotesServer) addResources() {
	titlesResource := mcp.NewResource(
		TitlesResourceURI,
		"Note Titles",
		mcp.WithResourceDescription("Titles of all stored notes"),
		mcp.WithMIMEType("application/json"),
	)
	ns.McpServer.AddResource(titlesResource, ns.ReadTitlesResource)

	notesResource := mcp.NewResource(
		NotesResourceURI,
		"Notes",
		mcp.WithResourceDescription("File names, titles and contents of all stored notes"),
		mcp.WithMIMEType("application/json"),
	)
	ns.McpServer.AddResource(notesResource, ns.ReadNotesResource)
}

// ReadTitlesResource serves the note titles as a JSON array
func (ns *NotesServer) ReadTitlesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	titles, err := ns.store.ListTitles()
	if err != nil {
		return nil, fmt.Errorf("failed to list note titles: %w", err)
	}

	return jsonResource(TitlesResourceURI, titles)
}

// ReadNotesResource serves every note as a JSON array
func (ns *NotesServer) ReadNotesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	notes, err := ns.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return jsonResource(NotesResourceURI, notes)
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := encodeJSON(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
