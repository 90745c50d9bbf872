package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/KyleBrandon/notestore/pkg/dto"
	"github.com/KyleBrandon/notestore/pkg/notes"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	probeTitle   = "# Client Probe"
	probeContent = "Written by the note client smoke test."
)

func main() {
	// Define command line flags
	server := flag.String("server", "", "Server command to execute")
	root := flag.String("root", "", "Notes folder passed to the server")
	flag.Parse()

	if *server == "" {
		fmt.Println("Error: You must specify the --server <server> [--root <note folder>]")
		flag.Usage()
		os.Exit(1)
	}

	// Create a context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Println("Initializing stdio client...")

	var args []string
	if *root != "" {
		args = append(args, "--root", *root)
	}
	args = append(args, flag.Args()...)

	c, err := client.NewStdioMCPClient(*server, os.Environ(), args...)
	if err != nil {
		slog.Error("Failed to create new client", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	if err := run(ctx, c, os.Stdout); err != nil {
		slog.Error("Smoke test failed", "error", err)
		os.Exit(1)
	}
}

// run exercises every note tool against a connected server using a probe note
func run(ctx context.Context, c *client.Client, out io.Writer) error {
	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "note-client",
		Version: "1.0.0",
	}

	initResult, err := c.Initialize(ctx, initRequest)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	fmt.Fprintf(out,
		"Initialized with server: %s %s\n\n",
		initResult.ServerInfo.Name,
		initResult.ServerInfo.Version,
	)

	// List Tools
	fmt.Fprintln(out, "Listing available tools...")
	tools, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}
	for _, tool := range tools.Tools {
		fmt.Fprintf(out, "- %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Fprintln(out)

	if _, err := callTool(ctx, c, out, "save_note", map[string]any{"title": probeTitle, "content": probeContent}); err != nil {
		return err
	}

	text, err := callTool(ctx, c, out, "get_note", map[string]any{"title": probeTitle})
	if err != nil {
		return err
	}

	var note dto.Note
	if err := json.Unmarshal([]byte(text), &note); err != nil {
		return fmt.Errorf("failed to unmarshal the note: %w", err)
	}
	if note.Content != probeContent {
		return fmt.Errorf("probe note content mismatch: %q", note.Content)
	}

	if _, err := callTool(ctx, c, out, "list_note_titles", nil); err != nil {
		return err
	}

	if _, err := callTool(ctx, c, out, "delete_note", map[string]any{"title": probeTitle}); err != nil {
		return err
	}

	return nil
}

func callTool(ctx context.Context, c *client.Client, out io.Writer, name string, arguments map[string]any) (string, error) {
	fmt.Fprintf(out, "Calling %s...\n", name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = arguments

	result, err := c.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to call %s: %w", name, err)
	}

	printToolResult(out, result)

	if result.IsError {
		return "", fmt.Errorf("%s failed: %s", name, notes.ResultText(result))
	}

	return notes.ResultText(result), nil
}

// Helper function to print tool results
func printToolResult(out io.Writer, result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			fmt.Fprintln(out, textContent.Text)
		} else {
			jsonBytes, _ := json.MarshalIndent(content, "", "  ")
			fmt.Fprintln(out, string(jsonBytes))
		}
	}
	fmt.Fprintln(out)
}
