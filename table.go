package prefixdfa

// State is a handle into a transition table. It has no meaning outside the
// automaton that handed it out.
type State uint32

const (
	// noState is the empty cell value: "no such transition".
	noState State = 0

	// startState is the state every walk begins from.
	startState State = 1

	// finalCell is the index of the acceptance cell in a row. The transition on
	// symbol id k lives at cell k+1.
	finalCell = 0
)

// cellOf returns the row index holding the transition for symbol id.
func cellOf(id int) int {
	return id + finalCell + 1
}

// newRow returns a row holding only an empty acceptance cell.
func newRow() []State {
	return make([]State, 1)
}

// expandRow grows row so that cell is addressable. New cells are empty.
func expandRow(row []State, cell int) []State {
	if cell < len(row) {
		return row
	}
	if cell < cap(row) {
		grown := row[:cell+1]
		clear(grown[len(row):])
		return grown
	}
	grown := make([]State, cell+1)
	copy(grown, row)
	return grown
}

// trimRow drops trailing empty transition cells, never the acceptance cell.
func trimRow(row []State) []State {
	n := len(row)
	for n > finalCell+1 && row[n-1] == noState {
		n--
	}
	return row[:n]
}

// hasTransitions reports whether row has at least one live outgoing edge.
func hasTransitions(row []State) bool {
	for _, s := range row[finalCell+1:] {
		if s != noState {
			return true
		}
	}
	return false
}

// follow returns the transition stored in cell, or noState if the row is too
// short to hold it.
func follow(row []State, cell int) State {
	if cell >= len(row) {
		return noState
	}
	return row[cell]
}
