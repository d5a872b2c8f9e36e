package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordfit/pkg/config"
	"github.com/bastiangx/wordfit/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the msgpack IPC for solver queries
type Server struct {
	matcher *solver.Matcher
	config  *config.Config
	decoder *msgpack.Decoder
	writer  *bufio.Writer
	encoder *msgpack.Encoder
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(matcher *solver.Matcher, cfg *config.Config) *Server {
	return NewServerWithIO(matcher, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w
func NewServerWithIO(matcher *solver.Matcher, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		matcher: matcher,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  writer,
		encoder: msgpack.NewEncoder(writer),
	}
}

// Start writes the ready message and serves requests until the input ends.
// EOF is a clean shutdown and returns nil.
func (s *Server) Start() error {
	log.Debug("Starting msgpack IPC server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed, stopping server")
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and routes it by action.
// Only write failures are returned, request problems are answered in band.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", 400)
	}

	switch request.Action {
	case "", ActionSolve:
		return s.handleSolve(request)
	case ActionAll:
		return s.handleAll(request)
	case ActionLookup:
		return s.handleLookup(request)
	case ActionInfo:
		return s.handleInfo(request)
	case ActionHealth:
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		return s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

// handleSolve always answers with a word, "" when nothing fits.
// Inputs longer than any word are fine, the matcher starts at the longest bucket.
func (s *Server) handleSolve(request Request) error {
	start := time.Now()
	word := s.matcher.FindLongest(request.Input)
	elapsed := time.Since(start)

	log.Debugf("Solved %q -> %q in %v", request.Input, word, elapsed)
	return s.send(SolveResponse{
		ID:        request.ID,
		Word:      word,
		Length:    utf8.RuneCountInString(word),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleAll(request Request) error {
	if msg, ok := s.checkInput(request.Input); !ok {
		return s.sendError(request.ID, msg, 400)
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.config.Server.DefaultLimit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	matches := s.matcher.FindAll(request.Input, limit)
	elapsed := time.Since(start)

	entries := make([]MatchEntry, len(matches))
	for i, m := range matches {
		entries[i] = MatchEntry{Word: m.Word, Rank: toRank(m.Rank)}
	}
	return s.send(AllResponse{
		ID:        request.ID,
		Matches:   entries,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleLookup(request Request) error {
	if request.Word == "" {
		return s.sendError(request.ID, "missing 'w' parameter", 400)
	}
	return s.send(LookupResponse{
		ID:    request.ID,
		Found: s.matcher.Index().Contains(request.Word),
	})
}

func (s *Server) handleInfo(request Request) error {
	stats := s.matcher.Stats()
	return s.send(InfoResponse{
		ID:        request.ID,
		Words:     stats["words"],
		Lengths:   s.matcher.Index().Lengths(),
		MaxLength: stats["maxLength"],
		Queries:   stats["queries"],
	})
}

// checkInput applies the configured input length cap to "all" requests,
// whose result size grows with the input. Zero means no cap.
func (s *Server) checkInput(input string) (string, bool) {
	maxLen := s.config.Server.MaxInputLen
	if maxLen > 0 && utf8.RuneCountInString(input) > maxLen {
		return fmt.Sprintf("input exceeds maximum length of %d characters", maxLen), false
	}
	return "", true
}

// send encodes one response and flushes it to the client
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		log.Errorf("Writing response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	log.Debugf("Request %q rejected: %s", id, message)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func toRank(rank int) uint16 {
	if rank > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(rank)
}
