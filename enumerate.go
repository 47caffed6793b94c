package prefixdfa

// edgeLabel pairs a byte with its symbol id and the Dfa row cell its
// transition lives in.
type edgeLabel struct {
	ch   byte
	id   int
	cell int
}

// lexicalOrder lists the labels of every translated byte in increasing byte
// order, so that walking a row through it visits children in byte order
// instead of symbol id order.
func lexicalOrder(a *Alphabet) []edgeLabel {
	order := make([]edgeLabel, 0, a.Len())
	for b := 0; b < alphabetSize; b++ {
		if id, ok := a.Lookup(byte(b)); ok {
			order = append(order, edgeLabel{ch: byte(b), id: id, cell: cellOf(id)})
		}
	}
	return order
}

func collectWords(set Set) []string {
	words := make([]string, 0, set.Size())
	set.Enumerate(func(prefix []byte, final bool) EnumerationResult {
		if final {
			words = append(words, string(prefix))
		}
		return Continue
	})
	return words
}
