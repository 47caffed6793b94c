package prefixdfa

import (
	"fmt"
	"math"
)

// MaxSuffixLen is the longest tail a MemDfa can store inline in one state.
const MaxSuffixLen = math.MaxUint16

// acceptStatus tags the acceptance cell of a MemDfa row.
type acceptStatus uint8

const (
	statusEmpty acceptStatus = iota
	statusHasWord
	statusHoldsSuffix
)

func (s acceptStatus) String() string {
	switch s {
	case statusEmpty:
		return "E"
	case statusHasWord:
		return "H"
	case statusHoldsSuffix:
		return "S"
	}
	return fmt.Sprintf("acceptStatus(%d)", uint8(s))
}

// acceptCell is cell 0 of a MemDfa row. suffix is only set when status is
// statusHoldsSuffix, and is then never empty.
type acceptCell struct {
	status acceptStatus
	suffix []byte
}

// memRow is one MemDfa state. edges is indexed by symbol id. A row holding a
// suffix has no live edges: the suffix is the only way out of it.
type memRow struct {
	accept acceptCell
	edges  []State
}

// storeSuffix makes tail the inline suffix of s. tail is copied so the row
// does not pin the caller's memory.
func (dfa *MemDfa) storeSuffix(s State, tail string) {
	if len(tail) > MaxSuffixLen {
		// TryInsert measures every tail before it mutates anything.
		panic(fmt.Errorf("%w: %d bytes", ErrSuffixTooLong, len(tail)))
	}
	dfa.rows[s] = memRow{accept: acceptCell{
		status: statusHoldsSuffix,
		suffix: []byte(tail),
	}}
}

// unfold converts the suffix held by s into explicit states far enough for a
// walk of rest to branch off it, where rest is the unconsumed remainder of the
// word being inserted. It returns false, changing nothing, if rest equals the
// stored suffix.
//
// The common prefix of rest and the suffix is materialized, plus one more
// stored byte when there is one; whatever is left of the suffix is reattached
// to the last new state. rest may be empty, in which case a single byte is
// unfolded.
func (dfa *MemDfa) unfold(rest string, s State) bool {
	suffix := dfa.rows[s].accept.suffix
	if string(suffix) == rest {
		return false
	}

	if (len(rest) == 0 || rest[0] != suffix[0]) && dfa.demote(s) {
		return true
	}

	n := min(commonPrefixLen(rest, suffix)+1, len(suffix))
	dfa.rows[s] = memRow{}

	cur := s
	for j := 0; j < n; j++ {
		cur = dfa.link(cur, suffix[j])
	}

	if n == len(suffix) {
		dfa.rows[cur].accept.status = statusHasWord
	} else {
		dfa.storeSuffix(cur, string(suffix[n:]))
	}
	return true
}

// demote moves the suffix of s one state down: s gets a single edge on the
// first stored byte, leading to a new state that holds the rest. It only runs
// when the row arena can take the new state without growing, and reports
// whether it did.
func (dfa *MemDfa) demote(s State) bool {
	if cap(dfa.rows) == len(dfa.rows) {
		return false
	}

	suffix := dfa.rows[s].accept.suffix
	dfa.rows[s] = memRow{}

	child := dfa.link(s, suffix[0])
	if len(suffix) == 1 {
		dfa.rows[child].accept.status = statusHasWord
	} else {
		dfa.storeSuffix(child, string(suffix[1:]))
	}
	return true
}

// link allocates a state and wires it in as the transition of parent on b.
func (dfa *MemDfa) link(parent State, b byte) State {
	id := dfa.alphabet.Translate(b)
	child := dfa.newState()
	edges := expandRow(dfa.rows[parent].edges, id)
	edges[id] = child
	dfa.rows[parent].edges = edges
	return child
}

func commonPrefixLen(a string, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
