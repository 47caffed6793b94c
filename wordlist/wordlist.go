// Package wordlist reads a text and turns it into words for a prefix
// automaton. The automaton treats words as opaque bytes, so all normalization
// happens here.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/mmap"
)

// ErrEmptyPath is returned by Load when no file name is given.
var ErrEmptyPath = errors.New("wordlist: empty path")

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 20

// Options controls how a raw token becomes a word.
type Options struct {
	// Lowercase folds ASCII letters to lower case.
	Lowercase bool

	// Strip lists characters removed from every token.
	Strip string

	// RequireLetter drops tokens without a single ASCII letter.
	RequireLetter bool
}

// DefaultOptions lower-cases, strips commas, full stops and opening quotes,
// and drops tokens that hold no letter at all.
func DefaultOptions() Options {
	return Options{
		Lowercase:     true,
		Strip:         ",.“",
		RequireLetter: true,
	}
}

// Normalize applies opts to token. ok is false if the token should be
// dropped. Bytes that are not valid UTF-8 are kept as they are.
func Normalize(token string, opts Options) (word string, ok bool) {
	if opts.RequireLetter && !hasLetter(token) {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); {
		r, size := utf8.DecodeRuneInString(token[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(token[i])
			i++
			continue
		}

		switch {
		case strings.ContainsRune(opts.Strip, r):
		case opts.Lowercase && 'A' <= r && r <= 'Z':
			b.WriteByte(byte(r) + 'a' - 'A')
		default:
			b.WriteString(token[i : i+size])
		}
		i += size
	}

	word = b.String()
	return word, word != ""
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if 'a' <= c && c <= 'z' {
			return true
		}
	}
	return false
}

// Read splits r on white space and returns the normalized words in the order
// they appear. Duplicates are kept.
func Read(r io.Reader, opts Options) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if word, ok := Normalize(scanner.Text(), opts); ok {
			words = append(words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return words, nil
}

// Load maps the file at path into memory and reads its words.
func Load(path string, opts Options) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return Read(io.NewSectionReader(f, 0, int64(f.Len())), opts)
}

// Inserter is anything words can be added to.
type Inserter interface {
	Insert(word string) bool
}

// tryInserter is an Inserter that can refuse a word with an error instead of
// panicking.
type tryInserter interface {
	TryInsert(word string) (bool, error)
}

// Fill inserts words into set and returns how many were new. It stops at the
// first word set refuses.
func Fill(set Inserter, words []string) (int, error) {
	added := 0
	try, canFail := set.(tryInserter)
	for _, word := range words {
		var ok bool
		if canFail {
			var err error
			if ok, err = try.TryInsert(word); err != nil {
				return added, fmt.Errorf("insert %.32q: %w", word, err)
			}
		} else {
			ok = set.Insert(word)
		}
		if ok {
			added++
		}
	}
	return added, nil
}
