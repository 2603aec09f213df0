package policy

import (
	"math/rand"

	"github.com/jsphweid/notewalk/graph"
	"github.com/jsphweid/notewalk/model"
)

// TopRank always takes the strongest outgoing transition, falling back to
// the strongest incoming one when the note has no usable successors.
func TopRank(s graph.Step) (model.NoteCount, bool) {
	if len(s.PathsOut) > 0 {
		return s.PathsOut[0], true
	}
	if len(s.PathsIn) > 0 {
		return s.PathsIn[0], true
	}
	return model.NoteCount{}, false
}

// WeightedRandom returns a chooser that picks among the outgoing
// transitions with probability proportional to their counts, falling back
// to the incoming ones the same way.
func WeightedRandom(r *rand.Rand) graph.Chooser {
	return func(s graph.Step) (model.NoteCount, bool) {
		if nc, ok := pickWeighted(r, s.PathsOut); ok {
			return nc, true
		}
		return pickWeighted(r, s.PathsIn)
	}
}

func pickWeighted(r *rand.Rand, ncs []model.NoteCount) (model.NoteCount, bool) {
	var total int
	for _, nc := range ncs {
		total += nc.Count
	}
	if total == 0 {
		return model.NoteCount{}, false
	}
	pick := r.Intn(total)
	for _, nc := range ncs {
		pick -= nc.Count
		if pick < 0 {
			return nc, true
		}
	}
	return model.NoteCount{}, false
}
