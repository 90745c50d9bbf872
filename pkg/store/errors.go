package store

import "errors"

// Error kinds returned by the store. Every error is wrapped with context, so
// callers match with errors.Is.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("note not found")
	ErrCorruption         = errors.New("corrupt note record")
	ErrStorageUnavailable = errors.New("notes storage unavailable")
)

// emptyTitleGuidance is returned to the caller when a title is missing
const emptyTitleGuidance = "Title cannot be an empty string, please generate a title that" +
	" describes the contents of the note first. Use `list_note_titles` to get" +
	" a list of existing titles to avoid accidentally overwriting an existing note."
