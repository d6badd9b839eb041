/*
Package server implements msgpack IPC for the word picker.

Clients write msgpack messages to stdin and read one response per message
from stdout. A pick request carries the letter map in the same shape as a
puzzle file:

	{"id": "r1", "letters": {"x": false, "a": {"fixed": [2]}, "n": {"elsewhere": [3, 5]}}, "l": 10}

The server answers with ranked candidates, the number of candidates before
the limit and the time taken in microseconds:

	{"id": "r1", "s": [{"w": "nasal", "sc": 450120, "r": 1}], "c": 1, "t": 830}

Other actions:

	{"id": "h1", "action": "health"}   -> {"id": "h1", "status": "ok"}
	{"id": "s1", "action": "stats"}    -> {"id": "s1", "status": "ok", "stats": {...}}

Failures are reported as {"id": ..., "e": message, "c": code}. Code 400 marks
a bad request, including constraint configuration errors; 500 marks a server
fault. A bad message never stops the server.
*/
package server

import (
	"github.com/bastiangx/wordpick/pkg/pick"
	"github.com/bastiangx/wordpick/pkg/score"
)

const (
	ActionPick   = "pick"
	ActionHealth = "health"
	ActionStats  = "stats"
)

// Request is any client message. Action defaults to pick.
type Request struct {
	ID      string         `msgpack:"id"`
	Action  string         `msgpack:"action,omitempty"`
	Letters map[string]any `msgpack:"letters,omitempty"`
	// SkipDup and Length override the configured matcher options when set.
	SkipDup  *bool `msgpack:"skip_dup,omitempty"`
	Length   *int  `msgpack:"length,omitempty"`
	Trace    bool  `msgpack:"trace,omitempty"`
	Limit    int   `msgpack:"l,omitempty"`
	Baseline int64 `msgpack:"b,omitempty"`
}

// PickResponse carries ranked candidates.
type PickResponse struct {
	ID          string                    `msgpack:"id"`
	Suggestions []score.Ranked            `msgpack:"s"`
	Count       int                       `msgpack:"c"`
	TimeTaken   int64                     `msgpack:"t"`
	Trace       map[string][]pick.Outcome `msgpack:"tr,omitempty"`
}

// StatusResponse answers health and stats requests.
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
