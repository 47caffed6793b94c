package prefixdfa_test

import (
	"bufio"
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/prefixdfa"
)

// variants lists a constructor for every automaton, so that behaviour shared
// by both is tested against both.
func variants() map[string]func() prefixdfa.Set {
	return map[string]func() prefixdfa.Set{
		"basic":  func() prefixdfa.Set { return prefixdfa.New() },
		"memory": func() prefixdfa.Set { return prefixdfa.NewMem() },
	}
}

func forEachVariant(t *testing.T, fn func(t *testing.T, set prefixdfa.Set)) {
	t.Helper()

	for name, newSet := range variants() {
		newSet := newSet
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn(t, newSet())
		})
	}
}

func insertAll(set prefixdfa.Set, words ...string) {
	for _, word := range words {
		set.Insert(word)
	}
}

func TestEasyInsert(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, "she", "sea", "shell")

		assert.True(t, set.Exists("she"))
		assert.True(t, set.Exists("sea"))
		assert.True(t, set.Exists("shell"))
		assert.False(t, set.Exists("he"))
		assert.Equal(t, 3, set.Size())
	})
}

func TestEasyInsert2(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, "the", "this")

		assert.True(t, set.Exists("the"))
		assert.True(t, set.Exists("this"))
		assert.False(t, set.Exists("tea"))
		assert.False(t, set.Exists("where"))
		assert.False(t, set.Exists("th"))
		assert.False(t, set.Exists("thesis"))
	})
}

func TestRealWordInsert(t *testing.T) {
	t.Parallel()

	words := []string{"she", "by", "sea", "shells", "the", "sells", "shore", "sea"}

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, words...)

		for _, word := range words {
			assert.True(t, set.Exists(word), word)
		}
		assert.Equal(t, 7, set.Size())
	})
}

func TestShortWordAfterLongWord(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, "she", "s")

		assert.True(t, set.Exists("s"))
		assert.True(t, set.Exists("she"))
		assert.False(t, set.Exists("sh"))
	})
}

func TestInsertIsIdempotent(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		require.True(t, set.Insert("shells"))
		states := set.StateCount()

		assert.False(t, set.Insert("shells"))
		assert.Equal(t, 1, set.Size())
		assert.Equal(t, states, set.StateCount())
	})
}

func TestEmptyWord(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		assert.False(t, set.Exists(""))
		assert.True(t, set.Insert(""))
		assert.False(t, set.Insert(""))
		assert.True(t, set.Exists(""))
		assert.Equal(t, 1, set.StateCount())

		set.Insert("a")
		assert.True(t, set.Exists(""))
		assert.True(t, set.Exists("a"))
		assert.Equal(t, 2, set.Size())
	})
}

func TestBinarySafeWords(t *testing.T) {
	t.Parallel()

	words := []string{"\x00", "\x00\xff", "a\x00b", "\xff\xfe\xfd", "日本"}

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, words...)

		for _, word := range words {
			assert.True(t, set.Exists(word), "%q", word)
		}
		assert.False(t, set.Exists("a"))
		assert.False(t, set.Exists("\xff"))
		assert.False(t, set.Exists("日"))
	})
}

func TestExistsDoesNotMutate(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, "she", "sea", "shells")

		var before, after bytes.Buffer
		require.NoError(t, set.Dump(&before))
		size, states := set.Size(), set.StateCount()

		for _, word := range []string{"zebra", "sh", "shellsx", "she", "\x01", ""} {
			set.Exists(word)
		}

		require.NoError(t, set.Dump(&after))
		assert.Equal(t, size, set.Size())
		assert.Equal(t, states, set.StateCount())
		assert.Equal(t, before.String(), after.String())
	})
}

func TestFindAllPrefixesOf(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, "", "blip", "cat", "catnip", "cats")

		assert.Equal(t, []string{"", "cat", "cats"}, set.FindAllPrefixesOf("catsup"))
		assert.Equal(t, []string{"", "cat", "catnip"}, set.FindAllPrefixesOf("catnip"))
		assert.Equal(t, []string{""}, set.FindAllPrefixesOf("dog"))
		assert.Equal(t, []string{""}, set.FindAllPrefixesOf("bli"))
	})
}

func TestEnumerate(t *testing.T) {
	t.Parallel()

	words := []string{"shore", "she", "by", "shells", "sea", "s"}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, words...)

		var got []string
		var prefixes int
		set.Enumerate(func(prefix []byte, final bool) prefixdfa.EnumerationResult {
			prefixes++
			if final {
				got = append(got, string(prefix))
			}
			return prefixdfa.Continue
		})

		assert.Equal(t, sorted, got)
		// "", b, by, s, se, sea, sh, she, shel, shell, shells, sho, shor, shore
		assert.Equal(t, 14, prefixes)
	})
}

func TestEnumerateSkipAndStop(t *testing.T) {
	t.Parallel()

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		insertAll(set, "apple", "apricot", "banana", "blueberry")

		var got []string
		set.Enumerate(func(prefix []byte, final bool) prefixdfa.EnumerationResult {
			if string(prefix) == "ap" {
				return prefixdfa.Skip
			}
			if final {
				got = append(got, string(prefix))
			}
			return prefixdfa.Continue
		})
		assert.Equal(t, []string{"banana", "blueberry"}, got)

		got = nil
		set.Enumerate(func(prefix []byte, final bool) prefixdfa.EnumerationResult {
			if final {
				got = append(got, string(prefix))
				return prefixdfa.Stop
			}
			return prefixdfa.Continue
		})
		assert.Equal(t, []string{"apple"}, got)
	})
}

func TestVariantsAgreeWithMap(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	words := randomWords(rng, 5000, "abcde", 12)
	probes := append(randomWords(rng, 5000, "abcdef", 12), words...)

	forEachVariant(t, func(t *testing.T, set prefixdfa.Set) {
		want := make(map[string]bool)
		for _, word := range words {
			assert.Equal(t, !want[word], set.Insert(word), word)
			want[word] = true
		}

		assert.Equal(t, len(want), set.Size())
		for _, word := range probes {
			assert.Equal(t, want[word], set.Exists(word), word)
		}
	})
}

func randomWords(rng *rand.Rand, n int, alphabet string, maxLen int) []string {
	words := make([]string, n)
	for i := range words {
		buf := make([]byte, rng.Intn(maxLen+1))
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		words[i] = string(buf)
	}
	return words
}

func readDictWords(t *testing.T) []string {
	dict := "/usr/share/dict/words"
	if _, err := os.Stat(dict); os.IsNotExist(err) {
		t.Skipf("Skipping full dictionary test; can't find %s", dict)
	}

	file, err := os.Open(dict)
	require.NoError(t, err)
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	return words
}

func TestFullDict(t *testing.T) {
	words := readDictWords(t)

	for name, newSet := range variants() {
		set := newSet()
		insertAll(set, words...)
		for _, word := range words {
			if !set.Exists(word) {
				t.Fatalf("%s: lost word %q", name, word)
			}
		}
		t.Logf("%s has %v words, %v states", name, set.Size(), set.StateCount())
	}
}

func ExampleNew() {
	dfa := prefixdfa.New()

	dfa.Insert("blip")
	dfa.Insert("cat")
	dfa.Insert("catnip")
	dfa.Insert("cats")

	for _, word := range dfa.FindAllPrefixesOf("catsup") {
		fmt.Printf("Found prefix %s\n", word)
	}

	dfa.Erase("cat")
	fmt.Println(dfa.Exists("cat"), dfa.Exists("cats"), dfa.Size())

	// Output:
	// Found prefix cat
	// Found prefix cats
	// false true 3
}
