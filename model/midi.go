package model

type EventSubtype uint8

const (
	NoteOn EventSubtype = iota
	NoteOff
)

// Event is a single timed event inside an assembled sequence. Offset is
// seconds from the start of the sequence.
type Event struct {
	Offset  float64
	Subtype EventSubtype
	Note    Note
}

// Sequence is the assembled, track-merged view of one midi file: every
// note on/off in offset order plus the total duration in seconds.
type Sequence struct {
	Name     string
	Duration float64
	Events   []Event
}
