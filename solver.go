// solver.go
// This file implements BoardSolver: backtracking search that assigns
// dictionary words to the runs of a parsed board, subject to the
// character-intersection constraints between crossing runs.

package wordscapes

import (
	"fmt"
	"sort"
	"strings"
)

// lengthBucket is one length's slice of the candidate pool: words sorted by
// ascending frequency rank (most common first), plus a per-word "currently
// assigned somewhere on the board" flag so no dictionary entry is used
// twice.
type lengthBucket struct {
	words []Word
	inUse []bool
}

// BoardSolver backtracks over a board's run graph, assigning a distinct
// dictionary word to every run such that every character-intersection
// constraint holds.
type BoardSolver struct {
	tiles      string
	graph      *runGraph
	visitOrder []int
	buckets    map[int]*lengthBucket
}

// NewBoardSolver parses grid and prepares a solver over the letters
// available in tiles, looked up through searcher. The lookup happens once,
// at construction; FirstNSolutions only backtracks.
func NewBoardSolver(searcher Searcher, tiles string, grid string) *BoardSolver {
	raw := parseRawBoard(grid)
	graph := newRunGraph(raw)
	words := searcher.Lookup(tiles)

	buckets := make(map[int]*lengthBucket)
	for _, w := range words {
		b, ok := buckets[w.Len()]
		if !ok {
			b = &lengthBucket{}
			buckets[w.Len()] = b
		}
		b.words = append(b.words, w)
	}
	for _, b := range buckets {
		sort.SliceStable(b.words, func(i, j int) bool {
			return b.words[i].Frequency < b.words[j].Frequency
		})
		b.inUse = make([]bool, len(b.words))
	}

	return &BoardSolver{
		tiles:      tiles,
		graph:      graph,
		visitOrder: computeVisitOrder(graph),
		buckets:    buckets,
	}
}

// FromBoard builds a BoardSolver against the package's default anagram
// index (the embedded wordlist), the Go equivalent of the original's
// BoardSolver::from_board.
func FromBoard(tiles string, grid string) *BoardSolver {
	return NewBoardSolver(DefaultSearcher(), tiles, grid)
}

// computeVisitOrder produces a deterministic most-constrained-first order:
// repeatedly pop the highest-degree unvisited run as a BFS seed, visiting
// its neighbors in descending-degree order, until every run has been
// visited.
func computeVisitOrder(g *runGraph) []int {
	n := len(g.nodes)
	byAscendingDegree := make([]int, n)
	for i := range byAscendingDegree {
		byAscendingDegree[i] = i
	}
	sort.SliceStable(byAscendingDegree, func(i, j int) bool {
		return g.degree(byAscendingDegree[i]) < g.degree(byAscendingDegree[j])
	})

	visited := make([]bool, n)
	order := make([]int, 0, n)

	for len(byAscendingDegree) > 0 {
		seed := byAscendingDegree[len(byAscendingDegree)-1]
		byAscendingDegree = byAscendingDegree[:len(byAscendingDegree)-1]

		queue := []int{seed}
		for len(queue) > 0 {
			nx := queue[0]
			queue = queue[1:]
			if visited[nx] {
				continue
			}
			visited[nx] = true
			order = append(order, nx)

			neighbors := g.neighbors(nx)
			sort.SliceStable(neighbors, func(i, j int) bool {
				return g.degree(neighbors[i]) > g.degree(neighbors[j])
			})
			queue = append(queue, neighbors...)
		}
	}
	return order
}

// Solution is one complete, consistent assignment of words to the board's
// runs.
type Solution struct {
	words []Word
	board *rawBoard
}

// Words returns the words used in the solution, in run index order
// (horizontal runs first, then vertical ones), not in solver visit order.
func (s Solution) Words() []Word {
	return append([]Word(nil), s.words...)
}

// String renders the solution as "Words used: w1, w2, ..." followed by the
// filled-in board.
func (s Solution) String() string {
	var sb strings.Builder
	sb.WriteString("Words used: ")
	for i, w := range s.words {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.Text)
	}
	sb.WriteByte('\n')
	sb.WriteString(s.board.String())
	return sb.String()
}

// FirstNSolutions returns up to n complete solutions, in depth-first
// exploration order (which, given the frequency-sorted candidate buckets,
// surfaces solutions built from common words first).
func (s *BoardSolver) FirstNSolutions(n int) []Solution {
	return s.findN(n, 0)
}

func (s *BoardSolver) findN(n int, visitInd int) []Solution {
	if visitInd >= len(s.graph.nodes) {
		return []Solution{s.snapshot()}
	}
	nx := s.visitOrder[visitInd]
	node := &s.graph.nodes[nx]

	wordLen := node.filter.Len()
	bucket, ok := s.buckets[wordLen]
	if !ok {
		return nil
	}

	var solutions []Solution
	for i := range bucket.words {
		if bucket.inUse[i] {
			continue
		}
		candidate := bucket.words[i]
		if !node.filter.Matches(candidate.Text) {
			continue
		}

		bucket.inUse[i] = true
		node.candidate = &bucket.words[i]

		if s.checkConstraintLocal(nx) {
			solutions = append(solutions, s.findN(n-len(solutions), visitInd+1)...)
		}

		bucket.inUse[i] = false

		if len(solutions) >= n {
			break
		}
	}
	node.candidate = nil
	return solutions
}

// checkConstraintLocal verifies every character-intersection constraint
// incident to nx whose other endpoint is already assigned.
func (s *BoardSolver) checkConstraintLocal(nx int) bool {
	for _, ei := range s.graph.adjacency[nx] {
		e := s.graph.edges[ei]
		a := &s.graph.nodes[e.from]
		b := &s.graph.nodes[e.to]
		if a.candidate == nil || b.candidate == nil {
			continue
		}
		if a.candidate.Text[e.constraint.aOffset] != b.candidate.Text[e.constraint.bOffset] {
			return false
		}
	}
	return true
}

// snapshot clones the graph's current candidate assignment into a Solution.
// Must only be called once every node carries a candidate.
func (s *BoardSolver) snapshot() Solution {
	words := make([]Word, len(s.graph.nodes))
	for i, n := range s.graph.nodes {
		if n.candidate == nil {
			panic(fmt.Sprintf("snapshot called with run %d unassigned", i))
		}
		words[i] = *n.candidate
	}
	return Solution{words: words, board: s.graph.render()}
}
