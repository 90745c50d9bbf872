// Package utils contains file system abstraction methods for easier testing
package utils

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TempFilePrefix is the prefix used for the temporary files behind atomic writes.
// It never carries a record extension, so listings skip in-flight writes.
const TempFilePrefix = ".note-tmp-"

// ValidatePath joins name onto rootDir and ensures the result stays inside rootDir
func ValidatePath(rootDir, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("path is empty")
	}

	if filepath.IsAbs(name) {
		return "", fmt.Errorf("path must be relative to the notes directory: %s", name)
	}

	fullPath := filepath.Clean(filepath.Join(rootDir, name))

	rel, err := filepath.Rel(rootDir, fullPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path is outside notes directory: %s", name)
	}

	return fullPath, nil
}

func Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func Remove(path string) error {
	return os.Remove(path)
}

func MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// WriteFileAtomic writes data to a temp file in the target's directory and
// renames it over the target, so readers never observe a partial write.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	// no-op once the rename succeeded
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Permissions:
	// 	Owner=rw
	// 	Group=r
	// 	Other=r
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	return nil
}

// ParseLogLevel maps DEBUG, INFO, WARN and ERROR (any case) to a slog level.
// Unknown values fall back to INFO.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ConfigureLogging installs a JSON slog handler writing to w as the default logger
func ConfigureLogging(level string, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
