package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/notewalk/constants"
	"github.com/jsphweid/notewalk/graph"
	"github.com/jsphweid/notewalk/model"
	"github.com/jsphweid/notewalk/policy"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var theGraph *graph.Graph

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves graph queries over http",
	Long:  `Builds a graph from MEDIA_PATH and serves queries over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func parseNoteVar(r *http.Request) (model.Note, error) {
	raw := mux.Vars(r)["note"]
	num, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("bad note %q", raw)
	}
	return model.Note(num), nil
}

func parseExcludeParam(r *http.Request) ([]model.Note, error) {
	raw := r.URL.Query().Get("exclude")
	if raw == "" {
		return nil, nil
	}
	var res []model.Note
	for _, part := range strings.Split(raw, ",") {
		num, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bad exclude %q", part)
		}
		res = append(res, model.Note(num))
	}
	return res, nil
}

// json would render []model.Note as base64; send plain numbers
func toInts(notes []model.Note) []int {
	res := make([]int, 0, len(notes))
	for _, note := range notes {
		res = append(res, int(note))
	}
	return res
}

func toNoteCountResponses(ncs []model.NoteCount) []model.NoteCountResponse {
	res := make([]model.NoteCountResponse, 0, len(ncs))
	for _, nc := range ncs {
		res = append(res, model.NoteCountResponse{Note: nc.Note, Count: nc.Count})
	}
	return res
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(toNoteCountResponses(theGraph.AllNotes()))
}

func HandlePaths(w http.ResponseWriter, r *http.Request) {
	note, err := parseNoteVar(r)
	if err != nil {
		writeError(w, err.Error(), 400)
		return
	}
	exclude, err := parseExcludeParam(r)
	if err != nil {
		writeError(w, err.Error(), 400)
		return
	}

	paths := theGraph.NotePaths(note, exclude)
	json.NewEncoder(w).Encode(model.PathsResponse{
		PathsIn:  toNoteCountResponses(paths.PathsIn),
		PathsOut: toNoteCountResponses(paths.PathsOut),
	})
}

func HandleInsertSequence(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(toInts(theGraph.InsertSequence()))
}

func HandleSequences(w http.ResponseWriter, r *http.Request) {
	note, err := parseNoteVar(r)
	if err != nil {
		writeError(w, err.Error(), 400)
		return
	}
	partial := r.URL.Query().Get("partial") == "true"
	json.NewEncoder(w).Encode(theGraph.SequencesForNote(note, partial))
}

func HandleTraverse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body", 400)
		return
	}

	var input model.TraverseRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	var next graph.Chooser
	switch input.Policy {
	case "", "top":
		next = policy.TopRank
	case "random":
		next = policy.WeightedRandom(rand.New(rand.NewSource(time.Now().UnixNano())))
	default:
		writeError(w, "Unknown policy: "+input.Policy, 400)
		return
	}

	notes := theGraph.Traverse(graph.TraverseOptions{
		StartNote:         input.StartNote,
		MaxCount:          input.MaxCount,
		DisallowReuse:     input.DisallowReuse,
		ResetAfterExhaust: input.ResetAfterExhaust,
		Next:              next,
	})
	json.NewEncoder(w).Encode(model.TraverseResponse{
		Id:    uuid.New().String(),
		Notes: toInts(notes),
	})
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notes", HandleNotes).Methods("GET")
	router.HandleFunc("/paths/{note}", HandlePaths).Methods("GET")
	router.HandleFunc("/insert-sequence", HandleInsertSequence).Methods("GET")
	router.HandleFunc("/sequences/{note}", HandleSequences).Methods("GET")
	router.HandleFunc("/traverse", HandleTraverse).Methods("POST")
	return router
}

func serve() {
	theGraph = BuildGraph(0)

	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
