/*
Package dictionary builds and loads the word index used by the solver.

The Index groups a word list into buckets keyed by rune length. Words keep the
relative order they had in the source list, so the first word of a bucket is
always the first word of that length in the file. No sorting happens anywhere:
ties between words of equal length are broken purely by source order.

An Index is built once and is read-only afterwards. It can be shared between
any number of goroutines without locking.

	words, err := dictionary.LoadFile("words.txt")
	idx := dictionary.NewIndex(words)
	fives := idx.Words(5)

Word lists come from plain text (one word per line), the binary word format
or the bundled default list, see Load.
*/
package dictionary

import (
	"sort"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a length bucketed view of a word list.
type Index struct {
	buckets map[int][]string
	members *patricia.Trie
	lengths []int
	maxLen  int
	size    int
}

// Stats holds summary info about an Index.
type Stats struct {
	Words     int
	Buckets   int
	MaxLength int
	PerLength map[int]int
}

// NewIndex consumes the whole word list and returns the finished Index.
// Words are stored verbatim. Empty strings are skipped.
func NewIndex(words []string) *Index {
	idx := &Index{
		buckets: make(map[int][]string),
		members: patricia.NewTrie(),
	}

	skipped := 0
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if n == 0 {
			skipped++
			continue
		}
		if _, ok := idx.buckets[n]; !ok {
			idx.lengths = append(idx.lengths, n)
		}
		idx.buckets[n] = append(idx.buckets[n], word)
		idx.members.Insert(patricia.Prefix(word), n)
		idx.size++
		if n > idx.maxLen {
			idx.maxLen = n
		}
	}
	sort.Ints(idx.lengths)

	if skipped > 0 {
		log.Debugf("Skipped %d empty entries while indexing", skipped)
	}
	log.Debugf("Indexed %d words into %d length buckets (max len %d)", idx.size, len(idx.lengths), idx.maxLen)
	return idx
}

// Words returns the words with exactly the given rune length, in source order.
// A missing length yields nil. The returned slice is shared and must not be modified.
func (idx *Index) Words(length int) []string {
	if idx == nil {
		return nil
	}
	return idx.buckets[length]
}

// Contains reports whether word is in the Index, compared byte for byte.
func (idx *Index) Contains(word string) bool {
	if idx == nil || word == "" {
		return false
	}
	return idx.members.Match(patricia.Prefix(word))
}

// Lengths returns the populated bucket lengths in ascending order.
func (idx *Index) Lengths() []int {
	if idx == nil {
		return nil
	}
	out := make([]int, len(idx.lengths))
	copy(out, idx.lengths)
	return out
}

// MaxLength is the rune length of the longest indexed word.
func (idx *Index) MaxLength() int {
	if idx == nil {
		return 0
	}
	return idx.maxLen
}

// Size is the number of indexed words, duplicates included.
func (idx *Index) Size() int {
	if idx == nil {
		return 0
	}
	return idx.size
}

// Stats returns word and bucket counts. A nil Index reports zeros.
func (idx *Index) Stats() Stats {
	stats := Stats{PerLength: make(map[int]int)}
	if idx == nil {
		return stats
	}
	stats.Words = idx.size
	stats.Buckets = len(idx.lengths)
	stats.MaxLength = idx.maxLen
	for n, words := range idx.buckets {
		stats.PerLength[n] = len(words)
	}
	return stats
}
