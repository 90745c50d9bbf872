package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KyleBrandon/notestore/pkg/notes"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
)

// errToolFailed marks a command whose tool result was an ERROR
var errToolFailed = errors.New("tool call failed")

// printResult writes the tool result exactly as an MCP caller would see it
func printResult(cmd *cobra.Command, result *mcp.CallToolResult, err error) error {
	if err != nil {
		return err
	}

	text := notes.ResultText(result)
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if result.IsError || strings.HasPrefix(text, notes.ErrorPrefix) {
		return errToolFailed
	}

	return nil
}

func (a *app) newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <title> <content|->",
		Short: "Create or replace a note",
		Long:  `Save a note under the given title. Pass - as the content to read it from stdin.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := args[1]
			if content == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read content from stdin: %w", err)
				}
				content = string(data)
			}

			ns := a.notesServer(cmd.Context())
			result, err := ns.SaveNote(cmd.Context(), mcp.CallToolRequest{}, notes.SaveNoteRequest{
				Title:   args[0],
				Content: content,
			})

			return printResult(cmd, result, err)
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <title>",
		Short: "Print a note as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := a.notesServer(cmd.Context())
			result, err := ns.GetNote(cmd.Context(), mcp.CallToolRequest{}, notes.GetNoteRequest{Title: args[0]})

			return printResult(cmd, result, err)
		},
	}
}

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <title>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := a.notesServer(cmd.Context())
			result, err := ns.DeleteNote(cmd.Context(), mcp.CallToolRequest{}, notes.DeleteNoteRequest{Title: args[0]})

			return printResult(cmd, result, err)
		},
	}
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every note as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := a.notesServer(cmd.Context())
			result, err := ns.ListNotes(cmd.Context(), mcp.CallToolRequest{}, notes.ListNotesRequest{})

			return printResult(cmd, result, err)
		},
	}
}

func (a *app) newTitlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "titles",
		Short: "Print the note titles as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ns := a.notesServer(cmd.Context())
			result, err := ns.ListNoteTitles(cmd.Context(), mcp.CallToolRequest{}, notes.ListNoteTitlesRequest{})

			return printResult(cmd, result, err)
		},
	}
}

func (a *app) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <title>",
		Short: "Print the file a title is stored in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.noteStore().Path(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}
