package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/KyleBrandon/notestore/pkg/notes"
	"github.com/KyleBrandon/notestore/pkg/store"
	"github.com/mark3labs/mcp-go/client"
)

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	root := t.TempDir()
	ns := notes.NewNotesServer(ctx, store.New(root))

	c, err := client.NewInProcessClient(ns.McpServer)
	if err != nil {
		t.Fatalf("Failed to create in-process client: %v", err)
	}
	defer c.Close()

	if err := c.Start(ctx); err != nil {
		t.Fatalf("Failed to start client: %v", err)
	}

	var out bytes.Buffer
	if err := run(ctx, c, &out); err != nil {
		t.Fatalf("run failed: %v\n%s", err, out.String())
	}

	output := out.String()
	for _, want := range []string{
		"Initialized with server: note-server",
		"- save_note:",
		"SUCCESS: Note '# Client Probe' saved.",
		`["Client Probe"]`,
		"SUCCESS: Note '# Client Probe' deleted.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q:\n%s", want, output)
		}
	}

	// The probe note is cleaned up
	if _, err := os.Stat(filepath.Join(root, "client_probe.json")); !os.IsNotExist(err) {
		t.Errorf("Probe note should be deleted, stat returned %v", err)
	}
}
