package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/notewalk/graph"
	"github.com/jsphweid/notewalk/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Builds a graph from live midi input",
	Long:  `Builds a graph from live midi input and suggests next notes as you play`,
	Run: func(cmd *cobra.Command, args []string) {
		live()
	},
}

func printSuggestions(g *graph.Graph, note model.Note) {
	paths := g.NotePaths(note, nil)
	if len(paths.PathsOut) == 0 {
		return
	}
	fmt.Printf("after %v try:", note)
	for _, p := range paths.PathsOut {
		fmt.Printf(" %v(%v)", p.Note, p.Count)
	}
	fmt.Println()
}

func live() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi in port")
		return
	}

	g := graph.New("live")
	var mu sync.Mutex
	var run []model.Note
	var runNum int

	// a pause in playing ends the current run: fold it into the graph as
	// one sequence and suggest where to go next
	debounced := debounce.New(500 * time.Millisecond)
	flush := func() {
		mu.Lock()
		defer mu.Unlock()
		if len(run) == 0 {
			return
		}
		runNum++
		seq := model.Sequence{Name: fmt.Sprintf("run-%v", runNum)}
		for _, note := range run {
			seq.Events = append(seq.Events, model.Event{Subtype: model.NoteOn, Note: note})
		}
		g.AddSequence(&seq)
		printSuggestions(g, run[len(run)-1])
		run = run[:0]
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			run = append(run, key)
			mu.Unlock()
			debounced(flush)
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	time.Sleep(time.Second * 5000) // lol
	stop()
}
