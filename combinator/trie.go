package combinator

import "unicode/utf8"

// trie is a rune-keyed prefix tree over the configured keywords.
type trie struct {
	children map[rune]*trie
	terminal bool
}

func newTrie(keys []string) *trie {
	root := &trie{}
	for _, key := range keys {
		node := root
		for _, r := range key {
			if node.children == nil {
				node.children = make(map[rune]*trie)
			}
			child, ok := node.children[r]
			if !ok {
				child = &trie{}
				node.children[r] = child
			}
			node = child
		}
		node.terminal = true
	}
	return root
}

// longest returns the longest keyword that text begins with, or "".
// The walk continues past shorter terminal nodes, so with "+" and "+++"
// registered, "++++" yields "+++".
func (t *trie) longest(text string) string {
	node := t
	end := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		child, ok := node.children[r]
		if !ok {
			break
		}
		node = child
		i += size
		if node.terminal {
			end = i
		}
	}
	return text[:end]
}
