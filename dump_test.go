package prefixdfa_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/prefixdfa"
)

func TestDfaDump(t *testing.T) {
	t.Parallel()

	dfa := prefixdfa.New()
	insertAll(dfa, "she", "sea", "shell")
	dfa.Erase("shell")

	var buf bytes.Buffer
	require.NoError(t, dfa.Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, `"s"`)
	assert.Contains(t, out, `"l"`)
	assert.Contains(t, out, "free")
	assert.Contains(t, out, "words")
}

func TestMemDfaDump(t *testing.T) {
	t.Parallel()

	dfa := prefixdfa.NewMem()
	insertAll(dfa, "she", "sea")

	var buf bytes.Buffer
	require.NoError(t, dfa.Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, `S(1):"e"`)
	assert.Contains(t, out, `S(1):"a"`)
	assert.Contains(t, out, "states")
}
