package file

import (
	"path/filepath"

	"github.com/jsphweid/notewalk/model"
)

func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// Basenames returns just the filenames, the shape the metadata table is
// keyed by.
func Basenames(m model.FileNumToMidiPath) []string {
	var res []string
	for _, path := range m {
		res = append(res, filepath.Base(path))
	}
	return res
}
