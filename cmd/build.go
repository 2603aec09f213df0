package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jsphweid/notewalk/constants"
	"github.com/jsphweid/notewalk/db"
	"github.com/jsphweid/notewalk/file"
	"github.com/jsphweid/notewalk/graph"
	"github.com/jsphweid/notewalk/midi"
	"github.com/jsphweid/notewalk/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds a graph and prints a report",
	Long:  `Builds a graph from every midi file under MEDIA_PATH and prints a ranking report`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		g := BuildGraph(maxNum)
		report(g)
		printMetadatas(maxNum)
	},
}

// BuildGraph assembles every midi file under MEDIA_PATH (up to maxNum, 0
// for all) and folds them into one graph.
func BuildGraph(maxNum int) *graph.Graph {
	paths := util.GatherAllMidiPaths(constants.GetMediaDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)
	g := graph.New("media")

	keys := util.GetKeys(fileNumMap)
	for i, num := range keys {
		path := fileNumMap[num]
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(keys))
		parsed, err := midi.ReadMidiFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		seq := midi.AssembleSequence(parsed, filepath.Base(path))
		g.AddSequence(&seq)
	}

	return g
}

// printMetadatas labels the ingested files from the metadata table. Needs
// the local dynamodb to be up.
func printMetadatas(maxNum int) {
	paths := util.GatherAllMidiPaths(constants.GetMediaDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)
	metadatas := db.GetSongMetadatas(file.Basenames(fileNumMap))
	for filename, md := range metadatas {
		fmt.Printf("%v: %v - %v\n", filename, md.Artist, md.Title)
	}
}

const reportTopNotes = 10
const reportTopPaths = 5

func report(g *graph.Graph) {
	all := g.AllNotes()
	fmt.Printf("Graph %v has %v distinct notes, %v total\n",
		g.Name, len(all), len(g.InsertSequence()))

	top := all[:util.Min(reportTopNotes, len(all))]
	for _, nc := range top {
		fmt.Printf("note %v: %v occurrences\n", nc.Note, nc.Count)
		paths := g.NotePaths(nc.Note, nil)
		out := paths.PathsOut[:util.Min(reportTopPaths, len(paths.PathsOut))]
		for _, p := range out {
			fmt.Printf("  -> %v (%v)\n", p.Note, p.Count)
		}
	}
}
