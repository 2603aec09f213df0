package midi

import (
	"github.com/jsphweid/notewalk/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	writeTicksPerQuarter = 960
	writeNoteTicks       = 480
	writeVelocity        = 100
)

// WriteSequence renders a generated note list as a single-track midi
// file, one eighth note per entry.
func WriteSequence(notes []model.Note, path string) error {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(writeTicksPerQuarter)

	var track smf.Track
	for i, note := range notes {
		var delta uint32
		if i > 0 {
			delta = writeNoteTicks
		}
		track = append(track, smf.Event{
			Delta:   delta,
			Message: smf.Message(midi.NoteOn(0, note, writeVelocity)),
		})
		track = append(track, smf.Event{
			Delta:   writeNoteTicks,
			Message: smf.Message(midi.NoteOff(0, note)),
		})
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)

	return res.WriteFile(path)
}
