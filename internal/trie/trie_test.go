package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrie(words ...string) *Trie {
	tr := New()
	for _, w := range words {
		tr.Insert(w)
	}
	return tr
}

func TestContainsPrefix(t *testing.T) {
	tr := newTrie("dog")

	tests := []struct {
		prefix string
		want   bool
	}{
		{prefix: "a", want: false},
		{prefix: "d", want: true},
		{prefix: "o", want: false},
		{prefix: "do", want: true},
		{prefix: "g", want: false},
		{prefix: "dog", want: true},
		{prefix: "dogg", want: false},
		{prefix: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.ContainsPrefix(tt.prefix))
		})
	}
}

func TestContainsPrefix_EveryPrefixOfEveryWord(t *testing.T) {
	words := []string{"cat", "catnip", "cats", "blip", "über", "日本語"}
	tr := newTrie(words...)

	for _, w := range words {
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			assert.True(t, tr.ContainsPrefix(string(runes[:i])), "prefix %q of %q", string(runes[:i]), w)
		}
	}
}

func TestContainsPrefix_UnrelatedWords(t *testing.T) {
	tr := newTrie("cat", "catnip", "blip")

	for _, w := range []string{"dog", "zebra", "xylophone"} {
		runes := []rune(w)
		for i := 1; i <= len(runes); i++ {
			assert.False(t, tr.ContainsPrefix(string(runes[:i])), "prefix %q of %q", string(runes[:i]), w)
		}
	}
}

func TestTerminalNodes(t *testing.T) {
	tr := newTrie("dog", "do")

	do, ok := tr.Find("do")
	require.True(t, ok)
	dog, ok := tr.Find("dog")
	require.True(t, ok)
	d, ok := tr.Find("d")
	require.True(t, ok)

	assert.True(t, tr.IsTerminal(do))
	assert.True(t, tr.IsTerminal(dog))
	assert.False(t, tr.IsTerminal(d))
	assert.NotSame(t, do, dog)

	assert.True(t, tr.ContainsPrefix("do"))
	assert.True(t, tr.ContainsPrefix("dog"))
	assert.True(t, tr.ContainsPrefix("d"))

	assert.True(t, tr.Contains("do"))
	assert.False(t, tr.Contains("d"))
	assert.False(t, tr.IsTerminal(tr.Root()))
}

func TestInsert(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		tr := newTrie("dog")
		nodes := tr.NumNodes()

		tr.Insert("dog")

		assert.Equal(t, 1, tr.NumAdded())
		assert.Equal(t, nodes, tr.NumNodes())
	})

	t.Run("shared prefix reuses nodes", func(t *testing.T) {
		tr := newTrie("dog", "do", "dot")

		// root + d + o + g + t
		assert.Equal(t, 5, tr.NumNodes())
		assert.Equal(t, 3, tr.NumAdded())
	})

	t.Run("empty word is a no-op", func(t *testing.T) {
		tr := New()
		tr.Insert("")

		assert.Equal(t, 0, tr.NumAdded())
		assert.Equal(t, 1, tr.NumNodes())
		assert.False(t, tr.Root().Terminal())
	})
}

func TestLookup(t *testing.T) {
	tr := newTrie("card", "car", "cat", "dog")

	t.Run("nil start means root", func(t *testing.T) {
		fromNil, ok := tr.Lookup('c', nil)
		require.True(t, ok)
		fromRoot, ok := tr.Lookup('c', tr.Root())
		require.True(t, ok)
		assert.Same(t, fromNil, fromRoot)
	})

	t.Run("missing edge", func(t *testing.T) {
		node, ok := tr.Lookup('x', nil)
		assert.False(t, ok)
		assert.Nil(t, node)

		c, _ := tr.Lookup('c', nil)
		node, ok = tr.Lookup('o', c)
		assert.False(t, ok)
		assert.Nil(t, node)
	})

	t.Run("resumed lookup matches full walk", func(t *testing.T) {
		for _, word := range []string{"card", "cat", "dog"} {
			runes := []rune(word)
			var node *Node
			for i, ch := range runes {
				next, ok := tr.Lookup(ch, node)
				require.True(t, ok)

				walked, ok := tr.Find(string(runes[:i+1]))
				require.True(t, ok)
				assert.Same(t, walked, next, "prefix %q", string(runes[:i+1]))

				node = next
			}
			assert.True(t, node.Terminal())
		}
	})
}

func TestEnumerate(t *testing.T) {
	tr := newTrie("cats", "cat", "blip", "catnip")

	t.Run("words in order", func(t *testing.T) {
		assert.Equal(t, []string{"blip", "cat", "catnip", "cats"}, tr.Words())
	})

	t.Run("skip", func(t *testing.T) {
		var seen []string
		tr.Enumerate(func(prefix []rune, terminal bool) EnumerationResult {
			if string(prefix) == "catn" {
				return Skip
			}
			if terminal {
				seen = append(seen, string(prefix))
			}
			return Continue
		})
		assert.Equal(t, []string{"blip", "cat", "cats"}, seen)
	})

	t.Run("stop", func(t *testing.T) {
		var seen []string
		tr.Enumerate(func(prefix []rune, terminal bool) EnumerationResult {
			if terminal {
				seen = append(seen, string(prefix))
				return Stop
			}
			return Continue
		})
		assert.Equal(t, []string{"blip"}, seen)
	})
}

func TestNilNode(t *testing.T) {
	var n *Node
	assert.False(t, n.Terminal())
	assert.Equal(t, 0, n.NumChildren())
	_, ok := n.Child('a')
	assert.False(t, ok)
}
