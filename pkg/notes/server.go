// Package notes contains the MCP tool implementations for the title keyed note store
package notes

import (
	"context"
	"log/slog"

	"github.com/KyleBrandon/notestore/pkg/store"
	"github.com/KyleBrandon/notestore/pkg/watch"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients during initialization
var Version = "v1.0.0"

const instructions = `Persistent notes addressed by title.
Use list_note_titles before saving to avoid overwriting an existing note.
Every tool answers with a single string: results starting with "SUCCESS:" or
containing JSON succeeded, results starting with "ERROR:" failed.`

type NotesServer struct {
	ctx       context.Context
	McpServer *server.MCPServer
	store     *store.Store
	watcher   *watch.Watcher
}

func NewNotesServer(ctx context.Context, noteStore *store.Store) *NotesServer {
	ns := &NotesServer{}

	ns.ctx = ctx
	ns.store = noteStore
	ns.McpServer = server.NewMCPServer("note-server", Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	ns.addTools()
	ns.addResources()

	return ns
}

// addTools adds all the tools to the server
func (ns *NotesServer) addTools() {
	ns.NewSaveNoteTool()
	ns.NewGetNoteTool()
	ns.NewDeleteNoteTool()
	ns.NewListNotesTool()
	ns.NewListNoteTitlesTool()
}

// WatchNotes tells connected clients to refresh the note resources whenever
// records change on disk, including changes made by other processes
func (ns *NotesServer) WatchNotes() error {
	w, err := watch.New(ns.store.Root(), store.Extension, ns.notifyResourcesChanged,
		watch.WithLogger(slog.Default().With("component", "watcher")))
	if err != nil {
		return err
	}

	if err := w.Start(ns.ctx); err != nil {
		w.Stop()
		return err
	}

	ns.watcher = w

	return nil
}

// Close stops the notes watcher if one is running
func (ns *NotesServer) Close() {
	if ns.watcher != nil {
		ns.watcher.Stop()
		ns.watcher = nil
	}
}

func (ns *NotesServer) notifyResourcesChanged() {
	slog.Debug("Notes changed, notifying clients")
	ns.McpServer.SendNotificationToAllClients("notifications/resources/list_changed", nil)
}
