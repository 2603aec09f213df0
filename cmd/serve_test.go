package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/notewalk/graph"
	"github.com/jsphweid/notewalk/model"
	"github.com/stretchr/testify/assert"
)

func setupTestGraph() {
	g := graph.New("test")
	g.AddSequence(&model.Sequence{
		Duration: 1,
		Events: []model.Event{
			{Offset: 0, Subtype: model.NoteOn, Note: 60},
			{Offset: 0.5, Subtype: model.NoteOn, Note: 62},
			{Offset: 1, Subtype: model.NoteOn, Note: 60},
		},
	})
	theGraph = g
}

func doRequest(req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w.Result()
}

func TestHandleNotes(t *testing.T) {
	setupTestGraph()

	resp := doRequest(httptest.NewRequest(http.MethodGet, "/notes", nil))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var notes []model.NoteCountResponse
	err := json.Unmarshal(respBody, &notes)
	assert.NoError(err)
	assert.Equal([]model.NoteCountResponse{
		{Note: 60, Count: 2},
		{Note: 62, Count: 1},
	}, notes)
}

func TestHandlePaths(t *testing.T) {
	setupTestGraph()

	resp := doRequest(httptest.NewRequest(http.MethodGet, "/paths/60", nil))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var paths model.PathsResponse
	err := json.Unmarshal(respBody, &paths)
	assert.NoError(err)
	assert.Equal([]model.NoteCountResponse{{Note: 62, Count: 1}}, paths.PathsOut)
	assert.Equal([]model.NoteCountResponse{{Note: 62, Count: 1}}, paths.PathsIn)
}

func TestHandlePathsExcludeParam(t *testing.T) {
	setupTestGraph()

	resp := doRequest(httptest.NewRequest(http.MethodGet, "/paths/60?exclude=62", nil))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var paths model.PathsResponse
	err := json.Unmarshal(respBody, &paths)
	assert.NoError(err)
	assert.Empty(paths.PathsOut)
	assert.Empty(paths.PathsIn)
}

func TestHandlePathsBadNote(t *testing.T) {
	setupTestGraph()

	resp := doRequest(httptest.NewRequest(http.MethodGet, "/paths/banana", nil))

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
}

func TestHandleInsertSequence(t *testing.T) {
	setupTestGraph()

	resp := doRequest(httptest.NewRequest(http.MethodGet, "/insert-sequence", nil))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var notes []int
	err := json.Unmarshal(respBody, &notes)
	assert.NoError(err)
	assert.Equal([]int{60, 62, 60}, notes)
}

func TestHandleSequencesPartial(t *testing.T) {
	setupTestGraph()

	resp := doRequest(httptest.NewRequest(http.MethodGet, "/sequences/62?partial=true", nil))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var seqs []model.Sequence
	err := json.Unmarshal(respBody, &seqs)
	assert.NoError(err)
	assert.Len(seqs, 1)
	assert.Equal(0.5, seqs[0].Duration)
	assert.Len(seqs[0].Events, 2)
}

func TestHandleTraverse(t *testing.T) {
	setupTestGraph()

	body, _ := json.Marshal(model.TraverseRequestBody{
		StartNote: 60,
		MaxCount:  3,
		Policy:    "top",
	})
	resp := doRequest(httptest.NewRequest(http.MethodPost, "/traverse", bytes.NewReader(body)))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var tr model.TraverseResponse
	err := json.Unmarshal(respBody, &tr)
	assert.NoError(err)
	assert.NotEmpty(tr.Id)
	assert.Equal([]int{60, 62, 60}, tr.Notes)
}

func TestHandleTraverseUnknownPolicy(t *testing.T) {
	setupTestGraph()

	body, _ := json.Marshal(model.TraverseRequestBody{StartNote: 60, MaxCount: 3, Policy: "psychic"})
	resp := doRequest(httptest.NewRequest(http.MethodPost, "/traverse", bytes.NewReader(body)))

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
}

func TestHandleTraverseUnknownStartNote(t *testing.T) {
	setupTestGraph()

	body, _ := json.Marshal(model.TraverseRequestBody{StartNote: 99, MaxCount: 3})
	resp := doRequest(httptest.NewRequest(http.MethodPost, "/traverse", bytes.NewReader(body)))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var tr model.TraverseResponse
	err := json.Unmarshal(respBody, &tr)
	assert.NoError(err)
	assert.Empty(tr.Notes)
}
