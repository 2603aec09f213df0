package graph

import (
	"sort"

	"github.com/jsphweid/notewalk/model"
)

// occurrence points back at one place a note was seen: the source
// sequence and the index of the note-on event inside its event list.
type occurrence struct {
	seq        *model.Sequence
	eventIndex int
}

// node lives in the graph's arena. Edges store counts keyed by neighbor
// note value; neighbor lookup goes back through the arena, so nodes never
// hold pointers to each other.
type node struct {
	note     model.Note
	count    int
	seen     int // creation rank, used to break count ties
	pathsIn  map[model.Note]int
	pathsOut map[model.Note]int
	occs     []occurrence
}

type Graph struct {
	Name string

	nodes     map[model.Note]*node
	insertLog []model.Note
}

func New(name string) *Graph {
	return &Graph{
		Name:  name,
		nodes: make(map[model.Note]*node),
	}
}

func (g *Graph) getOrCreateNode(note model.Note) *node {
	n, ok := g.nodes[note]
	if !ok {
		n = &node{
			note:     note,
			seen:     len(g.nodes),
			pathsIn:  make(map[model.Note]int),
			pathsOut: make(map[model.Note]int),
		}
		g.nodes[note] = n
	}
	return n
}

// AddSequence folds one sequence into the graph. Only note-on events are
// looked at; everything else in the event list is skipped. Adding the
// same sequence twice doubles every affected count, which is the intended
// accumulation behavior.
func (g *Graph) AddSequence(seq *model.Sequence) {
	var prev *node
	for i, evt := range seq.Events {
		if evt.Subtype != model.NoteOn {
			continue
		}
		curr := g.getOrCreateNode(evt.Note)
		curr.count++
		curr.occs = append(curr.occs, occurrence{seq: seq, eventIndex: i})
		g.insertLog = append(g.insertLog, evt.Note)
		if prev != nil {
			prev.pathsOut[curr.note]++
			curr.pathsIn[prev.note]++
		}
		prev = curr
	}
}

// rankSort orders a listing by count descending. Ties go to whichever
// note entered the graph first.
func (g *Graph) rankSort(ncs []model.NoteCount) {
	sort.Slice(ncs, func(i, j int) bool {
		if ncs[i].Count != ncs[j].Count {
			return ncs[i].Count > ncs[j].Count
		}
		return g.nodes[ncs[i].Note].seen < g.nodes[ncs[j].Note].seen
	})
}

// AllNotes returns every known note with its total occurrence count,
// highest first.
func (g *Graph) AllNotes() []model.NoteCount {
	res := make([]model.NoteCount, 0, len(g.nodes))
	for note, n := range g.nodes {
		res = append(res, model.NoteCount{Note: note, Count: n.count})
	}
	g.rankSort(res)
	return res
}

func (g *Graph) rankedPaths(paths map[model.Note]int, excluded map[model.Note]bool) []model.NoteCount {
	res := make([]model.NoteCount, 0, len(paths))
	for note, count := range paths {
		if excluded[note] {
			continue
		}
		res = append(res, model.NoteCount{Note: note, Count: count})
	}
	g.rankSort(res)
	return res
}

// NotePaths returns the ranked incoming and outgoing neighbors of note,
// minus anything in exclude. An unknown note yields two empty lists.
func (g *Graph) NotePaths(note model.Note, exclude []model.Note) model.PathSet {
	n, ok := g.nodes[note]
	if !ok {
		return model.PathSet{
			PathsIn:  []model.NoteCount{},
			PathsOut: []model.NoteCount{},
		}
	}
	excluded := make(map[model.Note]bool, len(exclude))
	for _, e := range exclude {
		excluded[e] = true
	}
	return model.PathSet{
		PathsIn:  g.rankedPaths(n.pathsIn, excluded),
		PathsOut: g.rankedPaths(n.pathsOut, excluded),
	}
}

// InsertSequence returns every note value ever processed, in processing
// order across all AddSequence calls.
func (g *Graph) InsertSequence() []model.Note {
	res := make([]model.Note, len(g.insertLog))
	copy(res, g.insertLog)
	return res
}

// SequencesForNote returns one sequence per recorded occurrence of note.
// With partial set, each result is truncated to start at the matched
// event, with the duration shortened by the time already elapsed.
func (g *Graph) SequencesForNote(note model.Note, partial bool) []model.Sequence {
	n, ok := g.nodes[note]
	if !ok {
		return []model.Sequence{}
	}
	res := make([]model.Sequence, 0, len(n.occs))
	for _, occ := range n.occs {
		if !partial {
			res = append(res, *occ.seq)
			continue
		}
		elapsed := occ.seq.Events[occ.eventIndex].Offset - occ.seq.Events[0].Offset
		res = append(res, model.Sequence{
			Name:     occ.seq.Name,
			Duration: occ.seq.Duration - elapsed,
			Events:   occ.seq.Events[occ.eventIndex:],
		})
	}
	return res
}
