package server

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/wordpick/internal/logger"
	"github.com/bastiangx/wordpick/pkg/engine"
	"github.com/bastiangx/wordpick/pkg/puzzle"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for pick requests
type Server struct {
	engine       *engine.Engine
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server reading requests from r and writing responses to w
func NewServer(e *engine.Engine, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		engine:  e,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		logger:  logger.New("ipc"),
	}
}

// Start processes messages until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return err
		}

		s.requestCount++
		if err := s.send(s.handleMessage(raw)); err != nil {
			s.logger.Errorf("Writing response: %v", err)
			return err
		}
	}
}

// handleMessage decodes one message and dispatches it by action
func (s *Server) handleMessage(raw msgpack.RawMessage) any {
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.UseLooseInterfaceDecoding(true)

	var req Request
	if err := dec.Decode(&req); err != nil {
		s.logger.Debugf("Invalid request: %v", err)
		return ErrorResponse{Error: "invalid msgpack request", Code: 400}
	}

	switch req.Action {
	case "", ActionPick:
		return s.handlePick(req)
	case ActionHealth:
		return StatusResponse{ID: req.ID, Status: "ok"}
	case ActionStats:
		return StatusResponse{ID: req.ID, Status: "ok", Stats: s.engine.Stats()}
	}
	return ErrorResponse{ID: req.ID, Error: fmt.Sprintf("unknown action: %s", req.Action), Code: 400}
}

func (s *Server) handlePick(req Request) any {
	set, err := puzzle.Decode(req.Letters)
	if err != nil {
		return ErrorResponse{ID: req.ID, Error: err.Error(), Code: 400}
	}

	opts := s.engine.Options()
	if req.SkipDup != nil {
		opts.SkipDuplicates = *req.SkipDup
	}
	if req.Length != nil {
		opts.WordLength = *req.Length
	}
	opts.Trace = req.Trace

	start := time.Now()
	resp, err := s.engine.Solve(engine.Request{
		Set:      set,
		Options:  opts,
		Limit:    req.Limit,
		Baseline: req.Baseline,
	})
	if err != nil {
		s.logger.Debug("Rejected constraints", "id", req.ID, "err", err)
		return ErrorResponse{ID: req.ID, Error: err.Error(), Code: 400}
	}
	elapsed := time.Since(start)

	s.logger.Debugf("Request %s: %d candidates in %v", req.ID, len(resp.Result.Candidates), elapsed)

	return PickResponse{
		ID:          req.ID,
		Suggestions: resp.Ranked,
		Count:       len(resp.Result.Candidates),
		TimeTaken:   elapsed.Microseconds(),
		Trace:       resp.Result.Trace,
	}
}

// send encodes a response and flushes it so the client sees it immediately
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		return err
	}
	return s.writer.Flush()
}
