package model

type NoteCountResponse struct {
	Note  Note `json:"note"`
	Count int  `json:"count"`
}

type PathsResponse struct {
	PathsIn  []NoteCountResponse `json:"paths_in"`
	PathsOut []NoteCountResponse `json:"paths_out"`
}

type TraverseRequestBody struct {
	StartNote         Note   `json:"start_note"`
	MaxCount          int    `json:"max_count"`
	DisallowReuse     bool   `json:"disallow_reuse"`
	ResetAfterExhaust bool   `json:"reset_after_exhaust"`
	Policy            string `json:"policy"`
}

// Notes is []int rather than []Note so the json comes out as a number
// array instead of base64 bytes.
type TraverseResponse struct {
	Id    string `json:"id"`
	Notes []int  `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
