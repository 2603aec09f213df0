package graph

import "github.com/jsphweid/notewalk/model"

// Step is what a Chooser gets to look at: the current note and its
// ranked neighbor lists, already filtered against the exclusion set.
type Step struct {
	Note     model.Note
	PathsIn  []model.NoteCount
	PathsOut []model.NoteCount
}

// Chooser picks the next note for a traversal, or reports that it has no
// candidate. The engine never recovers a panicking Chooser; a failing
// policy fails the caller.
type Chooser func(Step) (model.NoteCount, bool)

type TraverseOptions struct {
	StartNote model.Note
	MaxCount  int

	// DisallowReuse bars every visited note from being chosen again for
	// the rest of the traversal.
	DisallowReuse bool

	// ResetAfterExhaust clears the exclusion set once and retries the
	// current step when the chooser comes up empty.
	ResetAfterExhaust bool

	Next Chooser
}

// Traverse walks the graph from StartNote, asking Next for each hop, and
// returns the notes actually visited in order. An unknown start note
// returns an empty list. Running out of candidates ends the walk
// gracefully before MaxCount.
func (g *Graph) Traverse(opts TraverseOptions) []model.Note {
	res := []model.Note{}
	if _, ok := g.nodes[opts.StartNote]; !ok {
		return res
	}

	excluded := make(map[model.Note]bool)
	curr := opts.StartNote
	for step := 0; step < opts.MaxCount; step++ {
		if opts.DisallowReuse {
			excluded[curr] = true
		}

		candidate, ok := g.nextCandidate(curr, excluded, opts.Next)
		if !ok && opts.ResetAfterExhaust {
			for note := range excluded {
				delete(excluded, note)
			}
			candidate, ok = g.nextCandidate(curr, excluded, opts.Next)
		}

		res = append(res, curr)
		if !ok {
			break
		}
		curr = candidate.Note
	}
	return res
}

func (g *Graph) nextCandidate(curr model.Note, excluded map[model.Note]bool, next Chooser) (model.NoteCount, bool) {
	exclude := make([]model.Note, 0, len(excluded))
	for note := range excluded {
		exclude = append(exclude, note)
	}
	paths := g.NotePaths(curr, exclude)
	return next(Step{Note: curr, PathsIn: paths.PathsIn, PathsOut: paths.PathsOut})
}
