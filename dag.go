// dag.go
// This file implements the anagram DAG: the production anagram-subset
// index. Nodes carry letter-multisets and the dictionary words that share
// that exact multiset; edges run from supersets to their shortest covering
// subsets, so a lookup only ever walks nodes that could plausibly contain
// the query as a superset.

package wordscapes

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// dagNode is one node of the anagram DAG: a letter-multiset, the words
// sharing it (empty for the synthetic root), and the indices of its
// out-neighbors (its minimal-cover children).
type dagNode struct {
	multiset Multiset
	words    []Word
	children []int
}

// rootIndex is the index of the synthetic root node, which carries the
// universal multiset and no words.
const rootIndex = 0

// DAGSearcher is the anagram DAG index described in spec.md §4.3. Once
// built it is read-only and safe for concurrent use by multiple readers; a
// mutex-protected LRU memoizes recent Lookup results, mirroring the
// crossCache pattern the teacher uses for DAWG cross-checks.
type DAGSearcher struct {
	nodes   []dagNode
	cacheMu sync.Mutex
	cache   *lru.LRU
}

// lookupCacheSize bounds the memoized-query LRU, matching the size the
// teacher gives its own cross-check cache.
const lookupCacheSize = 2048

// NewDAGSearcher builds a DAG index from a multiset-to-words map, such as
// one produced by LoadDictionary.
func NewDAGSearcher(wordmap map[Multiset][]Word) *DAGSearcher {
	d := &DAGSearcher{
		nodes: []dagNode{{multiset: Universal()}},
	}
	d.cache, _ = lru.NewLRU(lookupCacheSize, nil)

	remaining := make([]Multiset, 0, len(wordmap))
	for m := range wordmap {
		remaining = append(remaining, m)
	}

	for len(remaining) > 0 {
		// Pick a maximal remaining multiset via a linear scan, upgrading
		// best to cur whenever cur is a superset of best.
		bestIdx := 0
		best := remaining[0]
		for i := 1; i < len(remaining); i++ {
			if remaining[i].HasSubset(best) {
				best = remaining[i]
				bestIdx = i
			}
		}
		m := best
		remaining[bestIdx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		newIdx := len(d.nodes)
		d.nodes = append(d.nodes, dagNode{multiset: m, words: wordmap[m]})

		for _, parent := range d.minimalCovers(m) {
			d.nodes[parent].children = append(d.nodes[parent].children, newIdx)
		}
	}

	return d
}

// minimalCovers returns the indices of every node n such that n's multiset
// is a superset of m but none of n's existing children also have a
// multiset that is a superset of m, found by BFS from the root.
func (d *DAGSearcher) minimalCovers(m Multiset) []int {
	visited := make([]bool, len(d.nodes))
	queue := []int{rootIndex}
	var covers []int

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n] {
			continue
		}
		visited[n] = true

		if !d.nodes[n].multiset.HasSubset(m) {
			continue
		}

		anyChildCovers := false
		for _, c := range d.nodes[n].children {
			if d.nodes[c].multiset.HasSubset(m) {
				anyChildCovers = true
				queue = append(queue, c)
			}
		}
		if !anyChildCovers {
			covers = append(covers, n)
		}
	}
	return covers
}

// Lookup normalizes tiles to a query multiset and BFS-walks the DAG,
// emitting every node whose multiset is a subset of the query and pruning
// any subtree that cannot share 3 or more letters with the query (the
// minimum dictionary word length, per MinWordLength).
func (d *DAGSearcher) Lookup(tiles string) []Word {
	q := FromString(tiles)

	d.cacheMu.Lock()
	cached, ok := d.cache.Get(q)
	d.cacheMu.Unlock()
	if ok {
		return append([]Word(nil), cached.([]Word)...)
	}

	visited := make([]bool, len(d.nodes))
	queue := []int{rootIndex}
	var results []Word

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n] {
			continue
		}
		visited[n] = true

		node := &d.nodes[n]
		switch {
		case q.HasSubset(node.multiset):
			results = append(results, node.words...)
			queue = append(queue, node.children...)
		case q.CountCommon(node.multiset) >= MinWordLength:
			queue = append(queue, node.children...)
		}
	}

	sortWords(results)
	d.cacheMu.Lock()
	d.cache.Add(q, append([]Word(nil), results...))
	d.cacheMu.Unlock()
	return results
}

// LookupFilter applies Lookup then keeps only words matching pattern.
func (d *DAGSearcher) LookupFilter(tiles string, pattern string) []Word {
	return lookupFilter(d, tiles, pattern)
}

// defaultDAG is the package's ready-to-use anagram index, built once from
// the embedded wordlist at package init, mirroring the teacher's eager
// package-level dictionary variables (see makeDawg in the teacher's
// dawg.go).
var defaultDAG = makeDefaultDAG()

func makeDefaultDAG() *DAGSearcher {
	wordmap, err := EmbeddedWordlist()
	if err != nil {
		panic(err)
	}
	return NewDAGSearcher(wordmap)
}

// DefaultSearcher returns the package's default anagram index, built from
// the embedded wordlist.
func DefaultSearcher() *DAGSearcher {
	return defaultDAG
}

// sortWords orders words by ascending length then lexicographically, per
// spec.md §4.3.
func sortWords(words []Word) {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i].Text) != len(words[j].Text) {
			return len(words[i].Text) < len(words[j].Text)
		}
		return words[i].Text < words[j].Text
	})
}
