package prefixdfa

// alphabetSize is the number of distinct byte values a word can contain.
const alphabetSize = 256

// Alphabet assigns a dense id to every byte value, in the order the bytes are
// first seen. Ids are never revoked, even when every word using a byte has
// been erased.
type Alphabet struct {
	ids  [alphabetSize]uint8
	seen [alphabetSize]bool
	n    int
}

// Translate returns the id of b, assigning the next unused id if b has not
// been seen before.
func (a *Alphabet) Translate(b byte) int {
	if a.seen[b] {
		return int(a.ids[b])
	}

	id := a.n
	a.ids[b] = uint8(id)
	a.seen[b] = true
	a.n++
	return id
}

// Lookup returns the id of b without assigning one. ok is false if b has never
// been translated, in which case no stored word can contain it.
func (a *Alphabet) Lookup(b byte) (id int, ok bool) {
	if !a.seen[b] {
		return 0, false
	}
	return int(a.ids[b]), true
}

// Len returns the number of ids handed out so far.
func (a *Alphabet) Len() int {
	return a.n
}

// Symbols returns the reverse mapping: the byte for each id, indexed by id.
func (a *Alphabet) Symbols() []byte {
	symbols := make([]byte, a.n)
	for b := 0; b < alphabetSize; b++ {
		if a.seen[b] {
			symbols[a.ids[b]] = byte(b)
		}
	}
	return symbols
}
