// trie_searcher.go
// This file implements TrieSearcher, a reference index built as a binary
// trie keyed by the bit positions of a multiset's packed representation.

package wordscapes

// bitsPerMultiset is the number of addressable bits in a packed Multiset.
const bitsPerMultiset = numBlocks * blockSize

// trieNode is one node of the binary trie: the words stored at the
// all-zero-remaining-bits node, and two children keyed by the current bit.
type trieNode struct {
	words    []Word
	children [2]*trieNode
}

// TrieSearcher is the bit-trie reference index. It exists for comparison
// against DAGSearcher; both must satisfy the same Searcher contract.
type TrieSearcher struct {
	root *trieNode
}

// NewTrieSearcher builds a TrieSearcher from a multiset-to-words map.
func NewTrieSearcher(wordmap map[Multiset][]Word) *TrieSearcher {
	root := &trieNode{}
	for m, words := range wordmap {
		root.insert(m, words)
	}
	return &TrieSearcher{root: root}
}

// insert descends bit by bit, clearing each visited bit, and stops as soon
// as the remaining bits are all clear, storing words at that node. Entries
// with a high-order zero tail end up as short paths rather than walking all
// bitsPerMultiset levels.
func (n *trieNode) insert(m Multiset, words []Word) {
	cur := n
	for i := 0; m != (Multiset{}); i++ {
		bit := m.bitAt(i)
		m.clearBitAt(i)
		idx := 0
		if bit {
			idx = 1
		}
		if cur.children[idx] == nil {
			cur.children[idx] = &trieNode{}
		}
		cur = cur.children[idx]
	}
	cur.words = words
}

// Lookup mirrors insertion: if the query's current bit is 0, only the
// 0-child is a candidate subset (a subset can't set a bit the query
// lacks); if 1, both children are candidates, since the 1-child has
// cleared that bit during insertion and the 0-child never had it set.
// Every node visited along the way contributes its stored words.
func (s *TrieSearcher) Lookup(tiles string) []Word {
	q := FromString(tiles)
	var results []Word
	s.root.lookup(q, 0, &results)
	sortWords(results)
	return results
}

func (n *trieNode) lookup(q Multiset, index int, results *[]Word) {
	if n == nil {
		return
	}
	*results = append(*results, n.words...)
	bit := q.bitAt(index)
	q.clearBitAt(index)

	if n.children[0] != nil {
		n.children[0].lookup(q, index+1, results)
	}
	if bit && n.children[1] != nil {
		n.children[1].lookup(q, index+1, results)
	}
}

// LookupFilter applies Lookup then keeps only words matching pattern.
func (s *TrieSearcher) LookupFilter(tiles string, pattern string) []Word {
	return lookupFilter(s, tiles, pattern)
}
