package model

type Note = uint8

type FileNumToMidiPath = map[uint32]string

// NoteCount is one entry of a ranked listing: a note and either its total
// occurrence count (AllNotes) or its transition count (NotePaths).
type NoteCount struct {
	Note  Note
	Count int
}

// PathSet holds the ranked incoming and outgoing neighbors of one note.
type PathSet struct {
	PathsIn  []NoteCount
	PathsOut []NoteCount
}

type SongMetadata struct {
	Artist  string
	Release string
	Title   string
	Year    uint
}
