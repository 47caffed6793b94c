package prefixdfa

import (
	"io"
)

// EnumFn is called by Enumerate once for every prefix stored in the automaton.
// final reports whether the prefix is itself a word. prefix is only valid for
// the duration of the call.
type EnumFn = func(prefix []byte, final bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this prefix or stop altogether
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Set is the query surface shared by both automaton variants.
type Set interface {
	Insert(word string) bool
	Exists(word string) bool
	Size() int
	StateCount() int
	FindAllPrefixesOf(input string) []string
	Enumerate(fn EnumFn)
	Dump(w io.Writer) error
}

// Eraser is a Set that also supports removing words.
type Eraser interface {
	Set
	Erase(word string) bool
}

// hasWord is the acceptance cell value of a state that terminates a word.
const hasWord State = 1

// Dfa is a prefix automaton with one state per distinct prefix. Words can be
// erased; the ids of states that become unreachable are recycled by later
// inserts.
type Dfa struct {
	alphabet Alphabet
	arena    stateArena
	size     int
}

// step is one edge taken while walking a word: the cell of state that was
// followed.
type step struct {
	state State
	cell  int
}

// New creates an empty basic automaton.
func New() *Dfa {
	return &Dfa{arena: newStateArena()}
}

// Insert adds word. It returns false if word was already present.
func (dfa *Dfa) Insert(word string) bool {
	rows := &dfa.arena.rows
	cur := startState
	for i := 0; i < len(word); i++ {
		cell := cellOf(dfa.alphabet.Translate(word[i]))
		nextState := follow((*rows)[cur], cell)
		if nextState == noState {
			(*rows)[cur] = expandRow((*rows)[cur], cell)
			nextState = dfa.arena.alloc()
			(*rows)[cur][cell] = nextState
		}
		cur = nextState
	}

	end := &(*rows)[cur][finalCell]
	if *end == hasWord {
		return false
	}
	*end = hasWord
	dfa.size++
	return true
}

// Exists reports whether word is present. It never modifies the automaton.
func (dfa *Dfa) Exists(word string) bool {
	cur, ok := dfa.walk(word, nil)
	return ok && dfa.arena.rows[cur][finalCell] == hasWord
}

// walk follows word from the start state, appending every edge taken to path
// when path is not nil. ok is false if some byte has no transition.
func (dfa *Dfa) walk(word string, path *[]step) (State, bool) {
	cur := startState
	for i := 0; i < len(word); i++ {
		id, ok := dfa.alphabet.Lookup(word[i])
		if !ok {
			return noState, false
		}
		cell := cellOf(id)
		nextState := follow(dfa.arena.rows[cur], cell)
		if nextState == noState {
			return noState, false
		}
		if path != nil {
			*path = append(*path, step{state: cur, cell: cell})
		}
		cur = nextState
	}
	return cur, true
}

// Erase removes word. It returns false, leaving the automaton untouched, if
// word was not present.
//
// States that no longer lead to any word are unlinked from their parent and
// their ids returned to the free list. Pruning stops at the first state that
// still accepts a word or has another outgoing edge; the start state is never
// pruned.
func (dfa *Dfa) Erase(word string) bool {
	path := make([]step, 0, len(word))
	cur, ok := dfa.walk(word, &path)
	if !ok || dfa.arena.rows[cur][finalCell] != hasWord {
		return false
	}

	rows := dfa.arena.rows
	rows[cur][finalCell] = noState
	dfa.size--

	for i := len(path) - 1; i >= 0; i-- {
		row := rows[cur]
		if cur == startState || row[finalCell] == hasWord || hasTransitions(row) {
			break
		}

		parent := path[i]
		rows[parent.state][parent.cell] = noState
		rows[parent.state] = trimRow(rows[parent.state])
		dfa.arena.release(cur)
		cur = parent.state
	}

	return true
}

// Size returns the number of words currently stored.
func (dfa *Dfa) Size() int {
	return dfa.size
}

// StateCount returns the number of state ids ever handed out, the start state
// included. Ids recycled after Erase are not counted twice, and erasing never
// lowers the count.
func (dfa *Dfa) StateCount() int {
	return dfa.arena.handedOut()
}

// FreeStates returns the number of retired state ids waiting to be reused.
func (dfa *Dfa) FreeStates() int {
	return dfa.arena.retired()
}

// FindAllPrefixesOf returns every stored word that is a prefix of input,
// shortest first.
func (dfa *Dfa) FindAllPrefixesOf(input string) []string {
	var results []string
	rows := dfa.arena.rows
	cur := startState

	// for each byte of the input
	for pos := 0; ; pos++ {
		if rows[cur][finalCell] == hasWord {
			results = append(results, input[:pos])
		}
		if pos == len(input) {
			return results
		}

		id, ok := dfa.alphabet.Lookup(input[pos])
		if !ok {
			return results
		}
		cur = follow(rows[cur], cellOf(id))
		if cur == noState {
			return results
		}
	}
}

// Enumerate calls fn for every prefix stored in the automaton, in byte order,
// starting with the empty prefix.
func (dfa *Dfa) Enumerate(fn EnumFn) {
	order := lexicalOrder(&dfa.alphabet)
	dfa.enumerate(startState, make([]byte, 0, 16), order, fn)
}

func (dfa *Dfa) enumerate(node State, prefix []byte, order []edgeLabel, fn EnumFn) EnumerationResult {
	row := dfa.arena.rows[node]

	result := fn(prefix, row[finalCell] == hasWord)
	if result != Continue {
		return result
	}

	for _, label := range order {
		child := follow(row, label.cell)
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
func (dfa *Dfa) Words() []string {
	return collectWords(dfa)
}
