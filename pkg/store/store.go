// Package store persists notes as JSON records in a single directory, one
// file per normalized title.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/KyleBrandon/notestore/pkg/dto"
	"github.com/KyleBrandon/notestore/pkg/utils"
)

// Extension marks a file in the storage root as a note record
const Extension = ".json"

// Store is a directory backed collection of notes addressed by title.
// It holds no state besides its configuration; every call goes to disk.
type Store struct {
	root   string
	logger *slog.Logger
}

type Option func(*Store)

// WithLogger sets the logger used for storage diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a store rooted at root and makes sure the directory exists.
// A failure to create the directory is logged, not returned: later calls
// report it on their own.
func New(root string, opts ...Option) *Store {
	s := &Store{
		root:   filepath.Clean(root),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.EnsureRoot(); err != nil {
		s.logger.Error("Could not create notes directory", "root", s.root, "error", err)
	}

	return s
}

// Root returns the storage directory
func (s *Store) Root() string {
	return s.root
}

// EnsureRoot creates the storage directory and any missing parents
func (s *Store) EnsureRoot() error {
	// Permissions:
	// 	Owner=rwx
	// 	Group=rx
	// 	Other=rx
	if err := utils.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// Path returns the record file for a title
func (s *Store) Path(title string) (string, error) {
	slot, err := Slot(title)
	if err != nil {
		return "", err
	}

	fullPath, err := utils.ValidatePath(s.root, slot+Extension)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return fullPath, nil
}

// Save writes the note under the title's slot, replacing whatever was there
func (s *Store) Save(title, content string) error {
	path, err := s.Path(title)
	if err != nil {
		return err
	}

	if err := s.EnsureRoot(); err != nil {
		return err
	}

	data, err := json.Marshal(dto.Note{Title: Sanitize(title), Content: content})
	if err != nil {
		return fmt.Errorf("failed to encode note: %w", err)
	}

	if err := utils.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s.logger.Debug("Saved note", "title", title, "path", path)

	return nil
}

// Get reads the note stored under the title's slot
func (s *Store) Get(title string) (dto.Note, error) {
	path, err := s.Path(title)
	if err != nil {
		return dto.Note{}, err
	}

	data, err := utils.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dto.Note{}, fmt.Errorf("%w: note '%s' does not exist", ErrNotFound, title)
		}
		return dto.Note{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	note, err := decodeRecord(data)
	if err != nil {
		return dto.Note{}, fmt.Errorf("%w: %s: %w", ErrCorruption, filepath.Base(path), err)
	}

	return note, nil
}

// Delete removes the note stored under the title's slot. A blank title names
// no note, so it is reported as not found.
func (s *Store) Delete(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: note '%s' does not exist", ErrNotFound, title)
	}

	path, err := s.Path(title)
	if err != nil {
		return err
	}

	if _, err := utils.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: note '%s' does not exist", ErrNotFound, title)
		}
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := utils.Remove(path); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s.logger.Debug("Deleted note", "title", title, "path", path)

	return nil
}

// ListAll returns every note in the storage root in directory order.
// A single unreadable record fails the whole listing.
func (s *Store) ListAll() ([]dto.NoteEntry, error) {
	notes := make([]dto.NoteEntry, 0)

	err := s.walkRecords(func(filename string, note dto.Note) {
		notes = append(notes, dto.NoteEntry{
			Filename: filename,
			Title:    note.Title,
			Content:  note.Content,
		})
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// ListTitles returns the title of every note in the storage root.
// It fails the same way ListAll does.
func (s *Store) ListTitles() ([]string, error) {
	titles := make([]string, 0)

	err := s.walkRecords(func(_ string, note dto.Note) {
		titles = append(titles, note.Title)
	})
	if err != nil {
		return nil, err
	}

	return titles, nil
}

func (s *Store) walkRecords(fn func(filename string, note dto.Note)) error {
	entries, err := utils.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	for _, entry := range entries {
		// Only regular record files, temp files and anything else are skipped
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		data, err := utils.ReadFile(filepath.Join(s.root, entry.Name()))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		note, err := decodeRecord(data)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorruption, entry.Name(), err)
		}

		fn(entry.Name(), note)
	}

	return nil
}

// record mirrors dto.Note with pointers so missing fields can be told apart
// from empty ones
type record struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func decodeRecord(data []byte) (dto.Note, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return dto.Note{}, fmt.Errorf("invalid json: %w", err)
	}

	if r.Title == nil {
		return dto.Note{}, errors.New("missing 'title' field")
	}

	if r.Content == nil {
		return dto.Note{}, errors.New("missing 'content' field")
	}

	return dto.Note{Title: *r.Title, Content: *r.Content}, nil
}
