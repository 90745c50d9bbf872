package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Every tool answers with one text block. Callers tell outcomes apart by the
// leading marker, JSON payloads carry no marker.
const (
	SuccessPrefix = "SUCCESS:"
	ErrorPrefix   = "ERROR:"
)

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func successResult(format string, args ...any) *mcp.CallToolResult {
	return textResult(SuccessPrefix + " " + fmt.Sprintf(format, args...))
}

// errorResult reports a failed action, e.g. "save note", to the caller
func errorResult(action string, err error) *mcp.CallToolResult {
	slog.Error("Tool call failed", "action", action, "error", err)

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			mcp.NewTextContent(fmt.Sprintf("%s Could not %s. %v", ErrorPrefix, action, err)),
		},
	}
}

// encodeJSON marshals v compactly, leaving <, > and & in note text as they are
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func jsonResult(action string, v any) *mcp.CallToolResult {
	data, err := encodeJSON(v)
	if err != nil {
		return errorResult(action, fmt.Errorf("failed to encode result: %w", err))
	}

	return textResult(string(data))
}

// ResultText joins the text blocks of a tool result
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}

	return strings.Join(parts, "\n")
}
