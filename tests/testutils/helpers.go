// Package testutils provides common utilities and helpers for testing
package testutils

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KyleBrandon/notestore/pkg/notes"
	"github.com/KyleBrandon/notestore/pkg/store"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestFolder represents a notes folder seeded with records
type TestFolder struct {
	Dir   string
	Notes map[string]string
}

// CreateTestFolder creates a temporary notes folder and saves the given
// title to content pairs through the store
func CreateTestFolder(t *testing.T, notes map[string]string) *TestFolder {
	t.Helper()

	tempDir := t.TempDir()
	noteStore := store.New(tempDir)

	for title, content := range notes {
		if err := noteStore.Save(title, content); err != nil {
			t.Fatalf("Failed to create test note %s: %v", title, err)
		}
	}

	return &TestFolder{
		Dir:   tempDir,
		Notes: notes,
	}
}

// WriteRawRecord writes data as-is into the folder, bypassing the store
func WriteRawRecord(t *testing.T, dir, filename, data string) string {
	t.Helper()

	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write record %s: %v", filename, err)
	}

	return fullPath
}

// SetupNotesServer creates a notes server over a test folder
func SetupNotesServer(t *testing.T, folder *TestFolder) *notes.NotesServer {
	t.Helper()

	ctx := context.Background()
	return notes.NewNotesServer(ctx, store.New(folder.Dir))
}

// ResultText returns the text of the first content block of a tool result
func ResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) == 0 {
		t.Fatal("Tool result has no content")
	}

	switch content := result.Content[0].(type) {
	case mcp.TextContent:
		return content.Text
	case *mcp.TextContent:
		return content.Text
	default:
		t.Fatalf("Unexpected content type %T", result.Content[0])
	}

	return ""
}

// AssertNoteContent verifies that a note has expected content
func AssertNoteContent(t *testing.T, ns *notes.NotesServer, title, expectedContent string) {
	t.Helper()

	ctx := context.Background()
	result, err := ns.GetNote(ctx, mcp.CallToolRequest{}, notes.GetNoteRequest{Title: title})
	if err != nil {
		t.Fatalf("Failed to get note %s: %v", title, err)
	}

	AssertMCPResult(t, result, "GetNote")

	var note struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(ResultText(t, result)), &note); err != nil {
		t.Fatalf("GetNote should return JSON for %s: %v", title, err)
	}

	if note.Content != expectedContent {
		t.Errorf("Content mismatch for %s.\nExpected:\n%s\n\nActual:\n%s", title, expectedContent, note.Content)
	}
}

// AssertNoteExists verifies that a note exists
func AssertNoteExists(t *testing.T, ns *notes.NotesServer, title string) {
	t.Helper()

	ctx := context.Background()
	result, err := ns.GetNote(ctx, mcp.CallToolRequest{}, notes.GetNoteRequest{Title: title})
	if err != nil {
		t.Fatalf("Failed to get note %s: %v", title, err)
	}

	if result.IsError {
		t.Fatalf("Note %s should exist but got error: %s", title, ResultText(t, result))
	}
}

// AssertNoteNotExists verifies that a note does not exist
func AssertNoteNotExists(t *testing.T, ns *notes.NotesServer, title string) {
	t.Helper()

	ctx := context.Background()
	result, err := ns.GetNote(ctx, mcp.CallToolRequest{}, notes.GetNoteRequest{Title: title})
	if err != nil {
		t.Fatalf("GetNote should not return Go error: %v", err)
	}

	if !result.IsError {
		t.Fatalf("Note %s should not exist but was found", title)
	}
}

// AssertJSONStructure verifies that JSON content has expected structure
func AssertJSONStructure(t *testing.T, jsonContent string, expectedFields []string) {
	t.Helper()

	var data interface{}
	err := json.Unmarshal([]byte(jsonContent), &data)
	if err != nil {
		t.Fatalf("Content should be valid JSON: %v", err)
	}

	// Handle both objects and arrays
	switch v := data.(type) {
	case map[string]interface{}:
		for _, field := range expectedFields {
			if _, exists := v[field]; !exists {
				t.Errorf("JSON should contain field '%s'", field)
			}
		}
	case []interface{}:
		if len(v) == 0 {
			t.Error("JSON array should not be empty")
			return
		}

		// Check first item structure
		if firstItem, ok := v[0].(map[string]interface{}); ok {
			for _, field := range expectedFields {
				if _, exists := firstItem[field]; !exists {
					t.Errorf("JSON array items should contain field '%s'", field)
				}
			}
		}
	default:
		t.Errorf("Unexpected JSON structure type: %T", data)
	}
}

// AssertMCPResult verifies that an MCP result is successful
func AssertMCPResult(t *testing.T, result *mcp.CallToolResult, operation string) {
	t.Helper()

	if result == nil {
		t.Fatalf("%s should return a result", operation)
	}

	if len(result.Content) == 0 {
		t.Fatalf("%s should return content", operation)
	}

	if result.IsError {
		t.Fatalf("%s should not return error: %s", operation, ResultText(t, result))
	}
}

// AssertMCPError verifies that an MCP result is an error carrying the ERROR marker
func AssertMCPError(t *testing.T, result *mcp.CallToolResult, operation string) {
	t.Helper()

	if result == nil {
		t.Fatalf("%s should return a result", operation)
	}

	if !result.IsError {
		t.Fatalf("%s should return error but got success", operation)
	}

	if text := ResultText(t, result); !strings.HasPrefix(text, notes.ErrorPrefix) {
		t.Errorf("%s error should start with %s: %s", operation, notes.ErrorPrefix, text)
	}
}

// CreateTestNotes creates a standard set of test notes keyed by title
func CreateTestNotes() map[string]string {
	return map[string]string{
		"Daily Note 2025-01-15": `## Today's Focus
- Work on the note store
- Write comprehensive tests

## Tasks
- [x] Save notes by title
- [ ] Add integration tests`,

		"# Project Plan": `## Overview
A persistent note store for LLM tool calling.

## Components
- Store: one JSON record per title
- Server: MCP tools over stdio`,

		"Team Standup": `**Date:** 2025-01-15
**Attendees:** Alice, Bob, Charlie

## Action Items
- [ ] Complete integration tests - Alice
- [ ] Update documentation - Bob`,
	}
}

// CompareJSON compares two JSON strings for equality
func CompareJSON(t *testing.T, expected, actual string) {
	t.Helper()

	var expectedData, actualData interface{}

	err := json.Unmarshal([]byte(expected), &expectedData)
	if err != nil {
		t.Fatalf("Failed to unmarshal expected JSON: %v", err)
	}

	err = json.Unmarshal([]byte(actual), &actualData)
	if err != nil {
		t.Fatalf("Failed to unmarshal actual JSON: %v", err)
	}

	expectedJSON, _ := json.MarshalIndent(expectedData, "", "  ")
	actualJSON, _ := json.MarshalIndent(actualData, "", "  ")

	if string(expectedJSON) != string(actualJSON) {
		t.Errorf("JSON mismatch.\nExpected:\n%s\n\nActual:\n%s", expectedJSON, actualJSON)
	}
}
