// subset_searcher.go
// This file implements SubsetSearcher, a reference index that enumerates
// every sub-multiset of the query directly and looks each one up in a plain
// map. It exists as the simplest possible oracle for cross-checking the
// other three indexes, not for production use.

package wordscapes

// SubsetSearcher is the subset-enumeration reference index.
type SubsetSearcher struct {
	wordmap map[Multiset][]Word
}

// NewSubsetSearcher builds a SubsetSearcher from a multiset-to-words map. No
// transformation of the map is required; enumeration happens at lookup time.
func NewSubsetSearcher(wordmap map[Multiset][]Word) *SubsetSearcher {
	return &SubsetSearcher{wordmap: wordmap}
}

// Lookup enumerates every sub-multiset of tiles and collects the words
// stored under each one that is actually present in the dictionary.
func (s *SubsetSearcher) Lookup(tiles string) []Word {
	q := FromString(tiles)
	var results []Word
	for _, sub := range enumSubsets(q) {
		results = append(results, s.wordmap[sub]...)
	}
	sortWords(results)
	return results
}

// LookupFilter applies Lookup then keeps only words matching pattern.
func (s *SubsetSearcher) LookupFilter(tiles string, pattern string) []Word {
	return lookupFilter(s, tiles, pattern)
}

// enumSubsets returns every sub-multiset of m, including the empty multiset
// and m itself.
func enumSubsets(m Multiset) []Multiset {
	counts := m.CharCounts()
	var subsets []Multiset
	var cur [26]uint8
	enumSubsetsImpl(&counts, &cur, 0, &subsets)
	return subsets
}

// enumSubsetsImpl recurses over each letter in turn, trying every count from
// 0 up to the letter's actual multiplicity, and records a subset once every
// letter has been assigned.
func enumSubsetsImpl(counts, cur *[26]uint8, index int, subsets *[]Multiset) {
	if index == 26 {
		*subsets = append(*subsets, FromCounts(cur))
		return
	}
	for v := uint8(0); v <= counts[index]; v++ {
		cur[index] = v
		enumSubsetsImpl(counts, cur, index+1, subsets)
	}
	cur[index] = 0
}
