package midi

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/notewalk/model"
	"github.com/stretchr/testify/assert"
)

func TestWriteReadAssembleRoundTrip(t *testing.T) {
	notes := []model.Note{60, 64, 67, 64, 60}
	path := filepath.Join(t.TempDir(), "out.mid")

	err := WriteSequence(notes, path)
	assert := assert.New(t)
	assert.NoError(err)

	parsed, err := ReadMidiFile(path)
	assert.NoError(err)

	seq := AssembleSequence(parsed, "out.mid")
	assert.Equal("out.mid", seq.Name)

	var onNotes []model.Note
	var offNotes []model.Note
	for _, evt := range seq.Events {
		if evt.Subtype == model.NoteOn {
			onNotes = append(onNotes, evt.Note)
		} else {
			offNotes = append(offNotes, evt.Note)
		}
	}
	assert.Equal(notes, onNotes)
	assert.Equal(notes, offNotes)

	// offsets never run backwards and the duration is the last event
	last := 0.0
	for _, evt := range seq.Events {
		assert.GreaterOrEqual(evt.Offset, last)
		last = evt.Offset
	}
	assert.Equal(last, seq.Duration)
}

func TestAssembleSequenceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.mid")

	err := WriteSequence(nil, path)
	assert := assert.New(t)
	assert.NoError(err)

	parsed, err := ReadMidiFile(path)
	assert.NoError(err)

	seq := AssembleSequence(parsed, "empty.mid")
	assert.Empty(seq.Events)
	assert.Equal(0.0, seq.Duration)
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))

	assert := assert.New(t)
	assert.Error(err)
}
