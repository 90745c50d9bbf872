package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KyleBrandon/notestore/pkg/utils"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the note tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE:  a.serve,
	}
}

func (a *app) serve(cmd *cobra.Command, args []string) error {
	// stdout carries the MCP transport
	if a.cfg.LogFile != "" {
		file, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer file.Close()

		utils.ConfigureLogging(a.cfg.LogLevel, file)
	} else {
		utils.ConfigureLogging(a.cfg.LogLevel, cmd.ErrOrStderr())
	}

	slog.Info("Starting notes MCP server",
		"root", a.cfg.Root,
		"log_level", a.cfg.LogLevel,
		"watch", a.cfg.Watch)

	ns := a.notesServer(cmd.Context())
	defer ns.Close()

	if a.cfg.Watch {
		if err := ns.WatchNotes(); err != nil {
			slog.Warn("Could not watch the notes folder", "root", a.cfg.Root, "error", err)
		}
	}

	if err := server.ServeStdio(ns.McpServer); err != nil {
		slog.Error("Notes MCP server failed", "error", err)
		return fmt.Errorf("notes MCP server failed: %w", err)
	}

	return nil
}
