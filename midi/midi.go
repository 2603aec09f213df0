package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/notewalk/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// AssembleSequence merges every track of a parsed midi file into one flat
// sequence of note on/off events ordered by absolute time in seconds.
// Duration is the offset of the last event.
func AssembleSequence(s *smf.SMF, name string) model.Sequence {
	var events []model.Event

	for _, track := range s.Tracks {
		var absTicks int64
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case evt.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, model.Event{
					Offset:  float64(s.TimeAt(absTicks)) / 1e6,
					Subtype: model.NoteOn,
					Note:    key,
				})
			case evt.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.Event{
					Offset:  float64(s.TimeAt(absTicks)) / 1e6,
					Subtype: model.NoteOff,
					Note:    key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.Slice(events, func(i, j int) bool {
		if events[i].Offset != events[j].Offset {
			return events[i].Offset < events[j].Offset
		}
		return events[i].Subtype == model.NoteOff
	})

	res := model.Sequence{Name: name, Events: events}
	if len(events) > 0 {
		res.Duration = events[len(events)-1].Offset
	}
	return res
}
