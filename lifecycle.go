package prefixdfa

// stateArena owns the rows of the basic automaton and recycles the ids of
// states that erase made unreachable.
//
// An id is on the free list iff no row references it. Row 0 is the noState
// sentinel and row 1 the start state; neither is ever released.
type stateArena struct {
	rows [][]State
	free []State // stack of retired ids
}

func newStateArena() stateArena {
	rows := make([][]State, startState+1)
	rows[noState] = newRow()
	rows[startState] = newRow()
	return stateArena{rows: rows}
}

// alloc returns a state with an empty row, preferring a retired id.
func (a *stateArena) alloc() State {
	if n := len(a.free); n > 0 {
		s := a.free[n-1]
		a.free = a.free[:n-1]
		a.rows[s] = newRow()
		return s
	}

	s := State(len(a.rows))
	a.rows = append(a.rows, newRow())
	return s
}

// release drops the row of s and makes its id available to alloc. The caller
// must already have removed every reference to s.
func (a *stateArena) release(s State) {
	if s <= startState {
		return
	}
	a.rows[s] = nil
	a.free = append(a.free, s)
}

// handedOut is the number of ids ever handed out, start state included.
// Recycling does not lower it.
func (a *stateArena) handedOut() int {
	return len(a.rows) - int(startState)
}

// retired is the number of ids currently waiting on the free list.
func (a *stateArena) retired() int {
	return len(a.free)
}
