/*
Package server implements msgpack IPC for the longest word solver.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. Logs go to stderr so they never mix with the stream.

# IPC

Every request carries an ID that is echoed back. The action field selects the
operation, an empty action means "solve":

	{"id": "req_001", "in": "rancary"}

The server answers with the longest word, its length and the time taken in
microseconds. An empty word means nothing in the dictionary can be built:

	{"id": "req_001", "w": "canary", "n": 6, "t": 38}

All constructible words, longest first, capped by l. Inputs longer than
server.max_input_len are rejected for this action only:

	{"id": "req_002", "action": "all", "in": "rancary", "l": 3}
	{"id": "req_002", "m": [{"w": "canary", "r": 1}, {"w": "carry", "r": 2}, {"w": "can", "r": 3}], "c": 3, "t": 52}

Dictionary membership and info:

	{"id": "req_003", "action": "lookup", "w": "carry"}
	{"id": "req_004", "action": "info"}

Malformed or unknown requests get an ErrorResponse and the stream continues.
A well formed solve request never fails, whatever the input length.
*/
package server

const (
	ActionSolve  = "solve"
	ActionAll    = "all"
	ActionLookup = "lookup"
	ActionInfo   = "info"
	ActionHealth = "health"
)

// Request is the envelope for every client message
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Input  string `msgpack:"in,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// SolveResponse - longest word response
type SolveResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w"`
	Length    int    `msgpack:"n"`
	TimeTaken int64  `msgpack:"t"`
}

// MatchEntry - one word of an AllResponse
type MatchEntry struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// AllResponse - every constructible word, longest first
type AllResponse struct {
	ID        string       `msgpack:"id"`
	Matches   []MatchEntry `msgpack:"m"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// LookupResponse - dictionary membership response
type LookupResponse struct {
	ID    string `msgpack:"id"`
	Found bool   `msgpack:"ok"`
}

// InfoResponse - dictionary and server info
type InfoResponse struct {
	ID        string `msgpack:"id"`
	Words     int    `msgpack:"words"`
	Lengths   []int  `msgpack:"lengths"`
	MaxLength int    `msgpack:"max_len"`
	Queries   int    `msgpack:"queries"`
}

// StatusResponse - ready and health messages
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
