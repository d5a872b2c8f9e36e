/*
Package solver finds the longest dictionary word that can be built from a set
of input characters.

A word can be built when, for every character it contains, the input holds at
least as many of that character. Comparison is exact: no case folding and no
filtering, digits and punctuation are ordinary characters.

	idx, err := dictionary.Load("")
	m := solver.New(idx)
	m.FindLongest("rancary") // "canary"

Lengths are tried from the input length downwards. Within a length the first
word in dictionary order that fits wins, so results are deterministic for a
given word list. The empty string means nothing fits.

A Matcher only reads its Index and keeps per call state on the stack, so it is
safe for concurrent use.
*/
package solver

import (
	"sync/atomic"
	"unicode/utf8"

	"github.com/bastiangx/wordfit/internal/logger"
	"github.com/bastiangx/wordfit/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Match is one constructible word as returned by FindAll.
type Match struct {
	Word   string
	Length int
	Rank   int
}

// Matcher answers longest word queries against a fixed Index.
type Matcher struct {
	index   *dictionary.Index
	log     *log.Logger
	queries atomic.Int64
}

// New returns a Matcher reading from index. The index must not change afterwards.
func New(index *dictionary.Index) *Matcher {
	return &Matcher{
		index: index,
		log:   logger.New("solver"),
	}
}

// Index returns the Index the Matcher reads from.
func (m *Matcher) Index() *dictionary.Index {
	return m.index
}

// FindLongest returns the longest word buildable from input, or "" if none is.
func (m *Matcher) FindLongest(input string) string {
	m.queries.Add(1)

	profile := NewProfile(input)
	for length := m.startLength(input); length > 0; length-- {
		candidates := m.index.Words(length)
		if len(candidates) == 0 {
			m.log.Debugf("No words of length %d in dictionary", length)
			continue
		}
		for _, word := range candidates {
			if profile.Covers(word) {
				m.log.Debug("Match found", "input", input, "word", word)
				return word
			}
		}
		m.log.Debugf("No words of length %d matched", length)
	}
	return ""
}

// FindAll returns every word buildable from input, longest first and in
// dictionary order within a length. A limit above zero caps the result.
func (m *Matcher) FindAll(input string, limit int) []Match {
	m.queries.Add(1)

	var matches []Match
	profile := NewProfile(input)
	for length := m.startLength(input); length > 0; length-- {
		for _, word := range m.index.Words(length) {
			if !profile.Covers(word) {
				continue
			}
			matches = append(matches, Match{
				Word:   word,
				Length: length,
				Rank:   len(matches) + 1,
			})
			if limit > 0 && len(matches) >= limit {
				return matches
			}
		}
	}
	return matches
}

// Stats returns counters about the Matcher and its Index.
func (m *Matcher) Stats() map[string]int {
	s := m.index.Stats()
	return map[string]int{
		"queries":   int(m.queries.Load()),
		"words":     s.Words,
		"buckets":   s.Buckets,
		"maxLength": s.MaxLength,
	}
}

// startLength caps the input length at the longest indexed word,
// lengths above it have no bucket to probe.
func (m *Matcher) startLength(input string) int {
	n := utf8.RuneCountInString(input)
	if longest := m.index.MaxLength(); n > longest {
		return longest
	}
	return n
}
