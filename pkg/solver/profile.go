package solver

import "unicode/utf8"

// Profile counts how often each character occurs in a string.
//
// Bytes that are not valid UTF-8 are kept apart from each other and from
// U+FFFD: each one is counted under the negated byte value.
type Profile map[rune]int

// NewProfile builds a fresh Profile for s. Characters are compared raw,
// so 'a' and 'A' are counted separately.
func NewProfile(s string) Profile {
	p := make(Profile, len(s))
	for i := 0; i < len(s); {
		r, size := charAt(s, i)
		p[r]++
		i += size
	}
	return p
}

// charAt decodes the character starting at s[i].
func charAt(s string, i int) (rune, int) {
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && size == 1 {
		return -rune(s[i]), 1
	}
	return r, size
}

// Covers reports whether word can be spelled from the characters in p,
// using each character at most as often as p holds it.
func (p Profile) Covers(word string) bool {
	need := NewProfile(word)
	for r, n := range need {
		have, ok := p[r]
		if !ok || n > have {
			return false
		}
	}
	return true
}

// Len is the total number of characters counted.
func (p Profile) Len() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}
