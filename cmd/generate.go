package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/notewalk/constants"
	"github.com/jsphweid/notewalk/graph"
	"github.com/jsphweid/notewalk/midi"
	"github.com/jsphweid/notewalk/model"
	"github.com/jsphweid/notewalk/policy"
	"github.com/spf13/cobra"
)

var generateRandom bool
var generateDisallowReuse bool
var generateReset bool

func init() {
	generateCmd.Flags().BoolVar(&generateRandom, "random", false, "pick transitions by weighted random instead of top rank")
	generateCmd.Flags().BoolVar(&generateDisallowReuse, "disallow-reuse", false, "never revisit a note")
	generateCmd.Flags().BoolVar(&generateReset, "reset-after-exhaust", false, "clear the exclusion set once when stuck")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <startNote> <maxCount>",
	Short: "Generates a midi file by walking the graph",
	Long:  `Generates a midi file by walking the graph built from MEDIA_PATH`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			panic("Need 2 args...")
		}
		startNote, err := strconv.Atoi(args[0])
		if err != nil {
			panic(err)
		}
		maxCount, err := strconv.Atoi(args[1])
		if err != nil {
			panic(err)
		}

		generate(model.Note(startNote), maxCount)
	},
}

func generate(startNote model.Note, maxCount int) {
	g := BuildGraph(0)

	next := graph.Chooser(policy.TopRank)
	if generateRandom {
		next = policy.WeightedRandom(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	notes := g.Traverse(graph.TraverseOptions{
		StartNote:         startNote,
		MaxCount:          maxCount,
		DisallowReuse:     generateDisallowReuse,
		ResetAfterExhaust: generateReset,
		Next:              next,
	})
	if len(notes) == 0 {
		fmt.Printf("Note %v is not in the graph, nothing to generate\n", startNote)
		return
	}

	os.MkdirAll(constants.GetOutDir(), 0777)
	path := filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
	if err := midi.WriteSequence(notes, path); err != nil {
		panic("Write failed for generated file: " + err.Error())
	}
	fmt.Printf("Wrote %v notes to %v\n", len(notes), path)
}
