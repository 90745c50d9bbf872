package dto

// Note is the persisted record for a single note
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteEntry is a note as returned by the listing operations, tagged with the
// file it was read from
type NoteEntry struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}
