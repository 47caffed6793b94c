package prefixdfa

import (
	"errors"
	"fmt"
)

// ErrSuffixTooLong is returned when an insert would have to store an inline
// suffix longer than MaxSuffixLen bytes.
var ErrSuffixTooLong = errors.New("prefixdfa: suffix too long")

// MemDfa is a prefix automaton that stores the unshared tail of a word inline
// in a single state instead of allocating one state per byte. The tail is
// unfolded into explicit states only when a later insert branches inside it.
//
// Words cannot be erased; states are never released.
type MemDfa struct {
	alphabet Alphabet
	rows     []memRow
	size     int
}

// NewMem creates an empty memory-optimized automaton.
func NewMem() *MemDfa {
	return &MemDfa{rows: make([]memRow, startState+1)}
}

func (dfa *MemDfa) newState() State {
	s := State(len(dfa.rows))
	dfa.rows = append(dfa.rows, memRow{})
	return s
}

// Insert adds word and returns false if it was already present. It panics
// with ErrSuffixTooLong if the word cannot be stored; use TryInsert to get
// the error instead.
func (dfa *MemDfa) Insert(word string) bool {
	added, err := dfa.TryInsert(word)
	if err != nil {
		panic(err)
	}
	return added
}

// TryInsert adds word and returns false if it was already present. If storing
// word would need an inline suffix longer than MaxSuffixLen it returns
// ErrSuffixTooLong and the automaton is left unchanged.
func (dfa *MemDfa) TryInsert(word string) (bool, error) {
	if n := dfa.pendingSuffixLen(word); n > MaxSuffixLen {
		return false, fmt.Errorf("%w: %d bytes", ErrSuffixTooLong, n)
	}

	cur := startState
	for i := 0; i < len(word); i++ {
		if dfa.rows[cur].accept.status == statusHoldsSuffix {
			if !dfa.unfold(word[i:], cur) {
				return false, nil
			}
		}

		id := dfa.alphabet.Translate(word[i])
		if nextState := follow(dfa.rows[cur].edges, id); nextState != noState {
			cur = nextState
			continue
		}

		// nothing below cur shares the rest of the word: keep it in one state
		child := dfa.link(cur, word[i])
		if rest := word[i+1:]; rest == "" {
			dfa.rows[child].accept.status = statusHasWord
		} else {
			dfa.storeSuffix(child, rest)
		}
		dfa.size++
		return true, nil
	}

	switch dfa.rows[cur].accept.status {
	case statusHasWord:
		return false, nil
	case statusHoldsSuffix:
		dfa.unfold("", cur)
	}

	dfa.rows[cur].accept.status = statusHasWord
	dfa.size++
	return true, nil
}

// pendingSuffixLen returns the length of the inline suffix inserting word
// would store, or 0 if it would store none. It does not modify anything.
func (dfa *MemDfa) pendingSuffixLen(word string) int {
	cur := startState
	for i := 0; i < len(word); i++ {
		row := &dfa.rows[cur]
		if row.accept.status == statusHoldsSuffix {
			// the walk will branch off right after the common prefix
			k := commonPrefixLen(word[i:], row.accept.suffix)
			if i+k >= len(word) {
				return 0
			}
			return len(word) - i - k - 1
		}

		id, ok := dfa.alphabet.Lookup(word[i])
		if !ok {
			return len(word) - i - 1
		}
		nextState := follow(row.edges, id)
		if nextState == noState {
			return len(word) - i - 1
		}
		cur = nextState
	}
	return 0
}

// Exists reports whether word is present. It never modifies the automaton.
func (dfa *MemDfa) Exists(word string) bool {
	cur := startState
	for i := 0; i < len(word); i++ {
		row := &dfa.rows[cur]
		if row.accept.status == statusHoldsSuffix {
			return string(row.accept.suffix) == word[i:]
		}

		id, ok := dfa.alphabet.Lookup(word[i])
		if !ok {
			return false
		}
		cur = follow(row.edges, id)
		if cur == noState {
			return false
		}
	}
	return dfa.rows[cur].accept.status == statusHasWord
}

// Size returns the number of words stored.
func (dfa *MemDfa) Size() int {
	return dfa.size
}

// StateCount returns the number of states allocated, the start state
// included. It never decreases.
func (dfa *MemDfa) StateCount() int {
	return len(dfa.rows) - int(startState)
}

// InlineBytes returns the total number of bytes held in inline suffixes.
func (dfa *MemDfa) InlineBytes() int {
	n := 0
	for i := range dfa.rows {
		n += len(dfa.rows[i].accept.suffix)
	}
	return n
}

// FindAllPrefixesOf returns every stored word that is a prefix of input,
// shortest first.
func (dfa *MemDfa) FindAllPrefixesOf(input string) []string {
	var results []string
	cur := startState

	for pos := 0; ; pos++ {
		accept := &dfa.rows[cur].accept
		switch accept.status {
		case statusHasWord:
			results = append(results, input[:pos])
		case statusHoldsSuffix:
			end := pos + len(accept.suffix)
			if end <= len(input) && input[pos:end] == string(accept.suffix) {
				results = append(results, input[:end])
			}
			return results
		}
		if pos == len(input) {
			return results
		}

		id, ok := dfa.alphabet.Lookup(input[pos])
		if !ok {
			return results
		}
		cur = follow(dfa.rows[cur].edges, id)
		if cur == noState {
			return results
		}
	}
}

// Enumerate calls fn for every prefix stored in the automaton, in byte order,
// starting with the empty prefix. Each byte of an inline suffix is reported
// as its own prefix, so the prefixes visited are the same as for a Dfa holding
// the same words.
func (dfa *MemDfa) Enumerate(fn EnumFn) {
	order := lexicalOrder(&dfa.alphabet)
	dfa.enumerate(startState, make([]byte, 0, 16), order, fn)
}

func (dfa *MemDfa) enumerate(node State, prefix []byte, order []edgeLabel, fn EnumFn) EnumerationResult {
	row := &dfa.rows[node]

	if row.accept.status == statusHoldsSuffix {
		for j := 0; j <= len(row.accept.suffix); j++ {
			final := j == len(row.accept.suffix)
			switch fn(append(prefix, row.accept.suffix[:j]...), final) {
			case Skip:
				return Continue
			case Stop:
				return Stop
			}
		}
		return Continue
	}

	result := fn(prefix, row.accept.status == statusHasWord)
	if result != Continue {
		return result
	}

	for _, label := range order {
		child := follow(row.edges, label.id)
		if child == noState {
			continue
		}
		result = dfa.enumerate(child, append(prefix, label.ch), order, fn)
		if result == Stop {
			return Stop
		}
	}

	return Continue
}

// Words returns every stored word in byte order.
func (dfa *MemDfa) Words() []string {
	return collectWords(dfa)
}
