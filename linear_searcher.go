// linear_searcher.go
// This file implements LinearSearcher, a reference index that buckets
// dictionary entries by multiset cardinality (descending) and scans with
// has_subset, skipping buckets strictly longer than the query.

package wordscapes

import "sort"

type linearBucket struct {
	multiset Multiset
	words    []Word
}

// LinearSearcher is the length-bucketed linear-scan reference index. It
// exists for comparison against DAGSearcher, not for production use; both
// must satisfy the same Searcher contract.
type LinearSearcher struct {
	buckets   []linearBucket
	lengthInd map[int]int
}

// NewLinearSearcher builds a LinearSearcher from a multiset-to-words map.
func NewLinearSearcher(wordmap map[Multiset][]Word) *LinearSearcher {
	buckets := make([]linearBucket, 0, len(wordmap))
	for m, words := range wordmap {
		buckets = append(buckets, linearBucket{multiset: m, words: words})
	}
	// Sort by cardinality descending, so lookup can skip the prefix of
	// buckets strictly longer than the query.
	sort.Slice(buckets, func(i, j int) bool {
		return cardinality(buckets[i].multiset) > cardinality(buckets[j].multiset)
	})

	lengthInd := make(map[int]int)
	if len(buckets) > 0 {
		curLength := cardinality(buckets[len(buckets)-1].multiset)
		for i := len(buckets) - 1; i >= 0; i-- {
			l := cardinality(buckets[i].multiset)
			if l > curLength {
				lengthInd[curLength] = i + 1
				curLength = l
			}
		}
		lengthInd[cardinality(buckets[0].multiset)] = 0
	}

	return &LinearSearcher{buckets: buckets, lengthInd: lengthInd}
}

func cardinality(m Multiset) int {
	n := 0
	counts := m.CharCounts()
	for _, c := range counts {
		n += int(c)
	}
	return n
}

// findClosestIndexKey returns the smallest indexed bucket-length key that is
// >= n, clamping to the longest bucket if n exceeds every key (per the open
// question in spec.md §9, rather than panicking).
func (s *LinearSearcher) findClosestIndexKey(n int) int {
	keys := make([]int, 0, len(s.lengthInd))
	for k := range s.lengthInd {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		if k >= n {
			return k
		}
	}
	if len(keys) == 0 {
		return 0
	}
	return keys[len(keys)-1]
}

// Lookup scans buckets whose cardinality is <= len(tiles), emitting every
// word whose multiset the tile multiset has as a subset.
func (s *LinearSearcher) Lookup(tiles string) []Word {
	q := FromString(tiles)
	startInd := s.lengthInd[s.findClosestIndexKey(len(tiles))]
	for startInd < len(s.buckets) && cardinality(s.buckets[startInd].multiset) > len(tiles) {
		startInd++
	}

	var results []Word
	for _, bucket := range s.buckets[startInd:] {
		if q.HasSubset(bucket.multiset) {
			results = append(results, bucket.words...)
		}
	}
	sortWords(results)
	return results
}

// LookupFilter applies Lookup then keeps only words matching pattern.
func (s *LinearSearcher) LookupFilter(tiles string, pattern string) []Word {
	return lookupFilter(s, tiles, pattern)
}
