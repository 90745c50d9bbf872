package main

import (
	"context"
	"log/slog"

	"github.com/KyleBrandon/notestore/pkg/config"
	"github.com/KyleBrandon/notestore/pkg/notes"
	"github.com/KyleBrandon/notestore/pkg/store"
	"github.com/spf13/cobra"
)

// app holds the flag values and the resolved configuration shared by all commands
type app struct {
	configFile string
	root       string
	logLevel   string
	logFile    string
	watch      bool
	verbose    bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "note_server",
		Short: "A persistent note store for LLM tool calling",
		Long: `note_server keeps notes as JSON records in a single folder, one file per
title. Without a subcommand it serves the note tools over MCP on stdio.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.serve,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file (or set NOTE_SERVER_CONFIG)")
	flags.StringVar(&a.root, "root", "", "Folder holding the notes (or set NOTE_SERVER_FOLDER)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&a.logFile, "log-file", "", "Server log file, empty logs to stderr")
	flags.BoolVar(&a.watch, "watch", false, "Notify clients when notes change on disk")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		a.newServeCmd(),
		a.newSaveCmd(),
		a.newGetCmd(),
		a.newDeleteCmd(),
		a.newListCmd(),
		a.newTitlesCmd(),
		a.newPathCmd(),
	)

	return rootCmd
}

// load resolves the configuration; flags set on the command line win
func (a *app) load(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = a.root
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if flags.Changed("watch") {
		cfg.Watch = a.watch
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg

	return nil
}

func (a *app) noteStore() *store.Store {
	return store.New(a.cfg.Root, store.WithLogger(slog.Default()))
}

func (a *app) notesServer(ctx context.Context) *notes.NotesServer {
	return notes.NewNotesServer(ctx, a.noteStore())
}
