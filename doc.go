/*
Package prefixdfa is an implementation of a prefix automaton: a deterministic
finite-state machine with one state per stored prefix, where each input byte
is a signal that moves the machine from one state to the next. It stores a set
of byte strings and answers membership queries in time proportional to the
length of the query, whatever the number of words stored.

The automaton is kept as a flat table of rows indexed by integer state id.
Cell 0 of a row records whether the state ends a word; the remaining cells hold
the next state for each symbol. Symbols are dense ids handed out to bytes in
the order they are first seen, so rows only grow as wide as the alphabet the
words actually use.

Two variants are provided, trading time against memory.

New() returns a Dfa. It allocates a state for every byte of every word, which
makes lookups of short words very fast. Words can be erased: states that no
longer lead to a word are unlinked and their ids recycled by later inserts.

NewMem() returns a MemDfa. When a word's tail is not shared with any other word
it is kept inline in a single state instead of a chain of states, and only
unfolded once another word branches inside it. This uses a good deal less
memory on natural-language word lists, at the cost of not supporting Erase.

Words are opaque byte strings. No case folding or tokenization is done; the
wordlist package holds a loader that normalizes a text before it is inserted.

Neither variant is safe for concurrent use. Callers that share one must
serialize access themselves.
*/
package prefixdfa
