package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

//go:embed data/words.txt
var bundledWords []byte

// Bundled returns the word list shipped with the binary, in file order.
func Bundled() []string {
	words, err := ReadWords(bytes.NewReader(bundledWords))
	if err != nil {
		// embedded data is read from memory, a failure here is a build defect
		panic(fmt.Sprintf("bundled word list is unreadable: %v", err))
	}
	return words
}

// Load builds an Index from the word list at path.
// An empty path selects the bundled list.
func Load(path string) (*Index, error) {
	if path == "" {
		log.Debug("No word list path given, using bundled list")
		return NewIndex(Bundled()), nil
	}
	words, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewIndex(words), nil
}

// LoadFile detects the format of path and reads its words in file order.
func LoadFile(path string) ([]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	switch format {
	case FormatText:
		words, err = ReadWords(file)
	case FormatBinary:
		words, err = ReadBinaryWords(bufio.NewReader(file))
	default:
		err = fmt.Errorf("unsupported format %v", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s (%s)", len(words), path, format)
	return words, nil
}

// ReadWords reads one word per line. Line endings and blank lines are dropped,
// everything else is kept verbatim.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan words: %w", err)
	}
	return words, nil
}

// ReadBinaryWords reads the binary layout: an int32 word count, then per word
// a uint16 byte length, the word bytes and a uint16 rank. Ranks are ignored,
// words are returned in file order.
func ReadBinaryWords(r io.Reader) ([]string, error) {
	var total int32
	if err := binary.Read(r, binary.LittleEndian, &total); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if total < 0 || total > maxBinaryWords {
		return nil, fmt.Errorf("invalid word count %d in header", total)
	}

	words := make([]string, 0, total)
	for i := 0; i < int(total); i++ {
		var wordLen uint16
		if err := binary.Read(r, binary.LittleEndian, &wordLen); err != nil {
			if errors.Is(err, io.EOF) {
				log.Warnf("Binary word list ended after %d of %d words", i, total)
				break
			}
			return nil, fmt.Errorf("failed to read word length: %w", err)
		}

		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(r, wordBytes); err != nil {
			return nil, fmt.Errorf("failed to read word %d: %w", i, err)
		}

		var rank uint16
		if err := binary.Read(r, binary.LittleEndian, &rank); err != nil {
			return nil, fmt.Errorf("failed to read rank of word %d: %w", i, err)
		}

		if wordLen == 0 {
			continue
		}
		words = append(words, string(wordBytes))
	}
	return words, nil
}

// WriteBinaryWords writes words in the layout ReadBinaryWords expects.
// The rank of each word is its 1-based position, capped at the uint16 max.
func WriteBinaryWords(w io.Writer, words []string) error {
	if len(words) > maxBinaryWords {
		return fmt.Errorf("too many words for binary format: %d", len(words))
	}
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(len(words))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, word := range words {
		if len(word) > math.MaxUint16 {
			return fmt.Errorf("word %d is too long for binary format (%d bytes)", i, len(word))
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(word))); err != nil {
			return fmt.Errorf("failed to write word length: %w", err)
		}
		if _, err := bw.WriteString(word); err != nil {
			return fmt.Errorf("failed to write word: %w", err)
		}
		rank := uint16(math.MaxUint16)
		if i+1 < math.MaxUint16 {
			rank = uint16(i + 1)
		}
		if err := binary.Write(bw, binary.LittleEndian, rank); err != nil {
			return fmt.Errorf("failed to write rank: %w", err)
		}
	}
	return bw.Flush()
}
