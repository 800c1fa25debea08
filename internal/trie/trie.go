// Package trie implements a prefix tree over runes.
//
// Words are inserted once, and the tree is then queried either as a whole
// (ContainsPrefix, Contains, Find) or one edge at a time with Lookup. Lookup
// takes the handle returned by a previous call so that a caller extending a
// prefix character by character never walks the tree from the root twice.
package trie

import "sort"

// Node is a single vertex of the tree. A node is owned by its parent; the
// handles handed out by Trie are borrowed references and stay valid for the
// life of the Trie since nodes are never removed.
type Node struct {
	children map[rune]*Node
	terminal bool
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Terminal reports whether an inserted word ends at this node.
func (n *Node) Terminal() bool {
	return n != nil && n.terminal
}

// Child returns the node reached by following the edge labelled ch.
func (n *Node) Child(ch rune) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	child, ok := n.children[ch]
	return child, ok
}

// NumChildren returns the number of outgoing edges.
func (n *Node) NumChildren() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Trie is a prefix tree rooted at a sentinel node that never represents a
// word.
type Trie struct {
	root     *Node
	numAdded int
	numNodes int
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{
		root:     newNode(),
		numNodes: 1,
	}
}

// Root returns the sentinel root handle.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds a word and, implicitly, all of its prefixes. Existing edges are
// followed as far as they match and the rest of the word is created one
// node per rune. Inserting a word twice has no further effect and inserting
// the empty string does nothing.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}

	node := t.root
	for _, ch := range word {
		child, ok := node.children[ch]
		if !ok {
			child = newNode()
			node.children[ch] = child
			t.numNodes++
		}
		node = child
	}

	if !node.terminal {
		node.terminal = true
		t.numAdded++
	}
}

// Find walks prefix from the root and returns the node it ends on.
func (t *Trie) Find(prefix string) (*Node, bool) {
	node := t.root
	for _, ch := range prefix {
		next, ok := node.children[ch]
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// ContainsPrefix reports whether text is a prefix of some inserted word.
// Complete words count as prefixes of themselves.
func (t *Trie) ContainsPrefix(text string) bool {
	_, ok := t.Find(text)
	return ok
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	node, ok := t.Find(word)
	return ok && node.terminal
}

// Lookup resolves a single edge labelled ch starting at from, or at the root
// when from is nil. A missing edge yields (nil, false).
func (t *Trie) Lookup(ch rune, from *Node) (*Node, bool) {
	if from == nil {
		from = t.root
	}
	next, ok := from.children[ch]
	return next, ok
}

// IsTerminal reports whether node ends an inserted word.
func (t *Trie) IsTerminal(node *Node) bool {
	return node.Terminal()
}

// NumAdded returns the number of distinct words inserted.
func (t *Trie) NumAdded() int {
	return t.numAdded
}

// NumNodes returns the number of nodes in the tree, including the root.
func (t *Trie) NumNodes() int {
	return t.numNodes
}

// EnumFn is called for every prefix during Enumerate.
type EnumFn = func(prefix []rune, terminal bool) EnumerationResult

// EnumerationResult tells Enumerate how to proceed after visiting a prefix.
type EnumerationResult = int

const (
	// Continue enumerating all words with this prefix
	Continue EnumerationResult = iota

	// Skip will skip all words with this prefix
	Skip

	// Stop will immediately stop enumerating words
	Stop
)

// Enumerate calls fn for every prefix in the tree, depth first, visiting
// children in ascending rune order. The root is reported with an empty
// prefix. The slice passed to fn is reused between calls.
func (t *Trie) Enumerate(fn EnumFn) {
	enumerate(t.root, nil, fn)
}

func enumerate(node *Node, runes []rune, fn EnumFn) EnumerationResult {
	result := fn(runes, node.terminal)
	if result != Continue {
		return result
	}

	keys := make([]rune, 0, len(node.children))
	for ch := range node.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	l := len(runes)
	runes = append(runes, 0)
	for _, ch := range keys {
		runes[l] = ch
		if enumerate(node.children[ch], runes, fn) == Stop {
			return Stop
		}
	}

	return Continue
}

// Words returns every inserted word in ascending rune order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.numAdded)
	t.Enumerate(func(prefix []rune, terminal bool) EnumerationResult {
		if terminal {
			words = append(words, string(prefix))
		}
		return Continue
	})
	return words
}
