// Package config resolves the note server settings from defaults, an
// optional YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigFile = "NOTE_SERVER_CONFIG"
	EnvFolder     = "NOTE_SERVER_FOLDER"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFile    = "LOG_FILE"
	EnvWatch      = "NOTE_SERVER_WATCH"
)

// DefaultFolderName is the storage directory created under the home directory
const DefaultFolderName = ".llm_notes_storage"

type Config struct {
	// Root is the directory holding the note records
	Root     string `yaml:"root"`
	LogLevel string `yaml:"log_level"`
	// LogFile receives the server log; empty means stderr
	LogFile string `yaml:"log_file"`
	Watch   bool   `yaml:"watch"`
}

func Default() Config {
	root := DefaultFolderName
	if home, err := os.UserHomeDir(); err == nil {
		root = filepath.Join(home, DefaultFolderName)
	}

	return Config{
		Root:     root,
		LogLevel: "INFO",
		LogFile:  "note-server.log",
	}
}

// Load builds the configuration. Values from configFile (or the file named by
// NOTE_SERVER_CONFIG) override the defaults, and environment variables
// override both. envFiles are loaded into the environment first without
// replacing variables that are already set; with none given, ./.env is tried.
func Load(configFile string, envFiles ...string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load .env file: %w", err)
		}
		slog.Debug("No .env file found, using environment variables and command line args")
	}

	if configFile == "" {
		configFile = os.Getenv(EnvConfigFile)
	}

	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return cfg, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFile overlays the values set in a YAML file onto cfg
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv(EnvFolder); v != "" {
		cfg.Root = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}

	if v := os.Getenv(EnvWatch); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvWatch, v, err)
		}
		cfg.Watch = watch
	}

	return nil
}

// Validate checks the settings and expands a leading ~ in Root
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.Root) == "" {
		return errors.New("notes folder is required")
	}

	root, err := ExpandHome(cfg.Root)
	if err != nil {
		return err
	}
	cfg.Root = root

	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log level %q: expected DEBUG, INFO, WARN or ERROR", cfg.LogLevel)
	}

	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
