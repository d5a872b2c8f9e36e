package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndexBuckets(t *testing.T) {
	words := []string{"carry", "a", "canary", "zebra", "false", "I", "an", "recommendation"}
	idx := NewIndex(words)

	testCases := []struct {
		length   int
		expected []string
	}{
		{1, []string{"a", "I"}},
		{2, []string{"an"}},
		{3, nil},
		{5, []string{"carry", "zebra", "false"}},
		{6, []string{"canary"}},
		{14, []string{"recommendation"}},
		{0, nil},
		{-1, nil},
		{99, nil},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, idx.Words(tc.length), "length %d", tc.length)
	}
	assert.Equal(t, len(words), idx.Size())
	assert.Equal(t, 14, idx.MaxLength())
	assert.Equal(t, []int{1, 2, 5, 6, 14}, idx.Lengths())
}

// Every word lands in exactly one bucket, duplicates included.
func TestNewIndexKeepsEveryWord(t *testing.T) {
	words := []string{"tac", "act", "cat", "act", "Act", "a-b", "x1"}
	idx := NewIndex(words)

	total := 0
	for _, n := range idx.Lengths() {
		for _, w := range idx.Words(n) {
			assert.Len(t, []rune(w), n)
		}
		total += len(idx.Words(n))
	}
	assert.Equal(t, len(words), total)
	assert.Equal(t, []string{"tac", "act", "cat", "act", "Act", "a-b"}, idx.Words(3))
}

func TestNewIndexCountsRunes(t *testing.T) {
	idx := NewIndex([]string{"née", "über", "ab"})

	assert.Equal(t, []string{"née"}, idx.Words(3))
	assert.Equal(t, []string{"über"}, idx.Words(4))
	assert.Empty(t, idx.Words(5), "byte length must not be used")
}

func TestNewIndexSkipsEmpty(t *testing.T) {
	idx := NewIndex([]string{"", "go", ""})

	assert.Equal(t, 1, idx.Size())
	assert.Nil(t, idx.Words(0))
	assert.Equal(t, []int{2}, idx.Lengths())
}

func TestIndexContains(t *testing.T) {
	idx := NewIndex([]string{"car", "carry", "canary"})

	testCases := []struct {
		word     string
		expected bool
	}{
		{"car", true},
		{"carry", true},
		{"canary", true},
		{"ca", false},
		{"carr", false},
		{"Car", false},
		{"", false},
		{"cars", false},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.expected, idx.Contains(tc.word))
		})
	}
}

func TestIndexStats(t *testing.T) {
	idx := NewIndex([]string{"a", "bb", "cc", "ddd"})
	stats := idx.Stats()

	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 3, stats.Buckets)
	assert.Equal(t, 3, stats.MaxLength)
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, stats.PerLength)
}

func TestIndexLengthsIsACopy(t *testing.T) {
	idx := NewIndex([]string{"a", "bb"})
	lengths := idx.Lengths()
	require.Len(t, lengths, 2)
	lengths[0] = 42

	assert.Equal(t, []int{1, 2}, idx.Lengths())
}

func TestNilIndex(t *testing.T) {
	var idx *Index

	assert.Nil(t, idx.Words(3))
	assert.False(t, idx.Contains("a"))
	assert.Zero(t, idx.MaxLength())
	assert.Zero(t, idx.Size())
	assert.Empty(t, idx.Lengths())
	assert.Zero(t, idx.Stats().Words)
}

func TestEmptyIndex(t *testing.T) {
	idx := NewIndex(nil)

	assert.Zero(t, idx.Size())
	assert.Zero(t, idx.MaxLength())
	assert.Nil(t, idx.Words(1))
}
