// Package cli handles cmd line input for querying the solver interactively, mostly for DBG and testing
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordfit/internal/logger"
	"github.com/bastiangx/wordfit/pkg/solver"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

const statsCommand = ":stats"

// InputHandler reads one query per line and prints the longest word that
// can be built from it. With a limit above 1 the other candidates are listed too.
type InputHandler struct {
	matcher      *solver.Matcher
	reader       io.Reader
	out          *log.Logger
	limit        int
	showTiming   bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler on stdin/stderr
func NewInputHandler(matcher *solver.Matcher, limit int, showTiming bool) *InputHandler {
	return NewInputHandlerWithIO(matcher, limit, showTiming, os.Stdin, os.Stderr)
}

// NewInputHandlerWithIO is NewInputHandler with explicit input and output
func NewInputHandlerWithIO(matcher *solver.Matcher, limit int, showTiming bool, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		matcher:    matcher,
		reader:     r,
		out:        logger.NewWithConfig(w, "", log.InfoLevel, false, false, log.TextFormatter),
		limit:      limit,
		showTiming: showTiming,
	}
}

// Start begins the interface loop.
// Each line is used verbatim apart from its line ending, so spaces count as characters.
// The loop ends cleanly when the input is exhausted.
func (h *InputHandler) Start() error {
	h.out.Print("WordFit CLI")
	h.out.Print("type some letters and press Enter to get the longest word (" + statsCommand + " for dictionary info, Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.reader)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		switch line {
		case "":
			continue
		case statsCommand:
			h.printStats()
		default:
			h.handleInput(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// handleInput runs a single query and prints the result
func (h *InputHandler) handleInput(input string) {
	h.requestCount++
	log.Debug("Processing request for", "input", input)

	start := time.Now()
	word := h.matcher.FindLongest(input)
	elapsed := time.Since(start)

	if h.showTiming {
		log.Debugf("Took [ %v ] for input '%s'", elapsed, input)
	}

	if word == "" {
		h.out.Printf("No word can be built from '%s'", input)
		return
	}

	if h.showTiming {
		h.out.Printf("Longest word for '%s': \033[38;5;75m%s\033[0m (%d letters, %v)", input, word, utf8.RuneCountInString(word), elapsed)
	} else {
		h.out.Printf("Longest word for '%s': \033[38;5;75m%s\033[0m (%d letters)", input, word, utf8.RuneCountInString(word))
	}

	if h.limit <= 1 {
		return
	}
	matches := h.matcher.FindAll(input, h.limit)
	h.out.Printf("Top %d of the words that fit:", len(matches))
	for _, m := range matches {
		h.out.Printf("%2d. %-24s (%d)", m.Rank, m.Word, m.Length)
	}
}

// printStats shows dictionary counters with humanized numbers
func (h *InputHandler) printStats() {
	stats := h.matcher.Stats()
	h.out.Printf("words:      %s", humanize.Comma(int64(stats["words"])))
	h.out.Printf("lengths:    %d (longest %d)", stats["buckets"], stats["maxLength"])
	h.out.Printf("queries:    %s (%s this session)", humanize.Comma(int64(stats["queries"])), humanize.Comma(int64(h.requestCount)))
}
