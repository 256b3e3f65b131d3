package wordscapes

import (
	"strings"
	"testing"
)

func solverWordmap(t *testing.T) map[Multiset][]Word {
	t.Helper()
	wordmap, err := LoadDictionary(strings.NewReader("cat 1\nact 2\nsat 3\npass 4\n"))
	if err != nil {
		t.Fatalf("LoadDictionary returned error: %v", err)
	}
	return wordmap
}

// TestSolverCrossingBoard solves the plus-shaped board from
// board_test.go's TestRunGraphPlusShape with tiles "cats": the two runs
// cross at offset 1, where "cat" and "sat" both carry 'a'.
func TestSolverCrossingBoard(t *testing.T) {
	searcher := NewDAGSearcher(solverWordmap(t))
	solver := NewBoardSolver(searcher, "cats", "_#_\n###\n_#_\n")

	solutions := solver.FirstNSolutions(1)
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}

	sol := solutions[0]
	if len(sol.words) != 2 {
		t.Fatalf("solution has %d words, want 2", len(sol.words))
	}
	for _, w := range sol.words {
		if w.Len() != 3 {
			t.Errorf("solution word %q has length %d, want 3 (run length)", w.Text, w.Len())
		}
		if !FromString("cats").HasSubset(FromString(w.Text)) {
			t.Errorf("solution word %q is not a sub-multiset of the tiles", w.Text)
		}
	}

	// The crossing constraint: offset 1 of each word must match. The
	// solver clears its run assignments on unwind, so the words are read
	// from the solution, which lists them by run index.
	e := solver.graph.edges[0]
	a := sol.words[e.from]
	b := sol.words[e.to]
	if a.Text[e.constraint.aOffset] != b.Text[e.constraint.bOffset] {
		t.Errorf("crossing constraint violated: %q[%d] != %q[%d]",
			a.Text, e.constraint.aOffset, b.Text, e.constraint.bOffset)
	}
}

// TestSolverRoundTrip checks that a solved single-run board, rendered and
// re-parsed, yields a run of the same length.
func TestSolverRoundTrip(t *testing.T) {
	searcher := NewDAGSearcher(solverWordmap(t))
	solver := NewBoardSolver(searcher, "bypass", "####")

	solutions := solver.FirstNSolutions(1)
	if len(solutions) != 1 {
		t.Fatalf("got %d solutions, want 1", len(solutions))
	}

	rendered := solutions[0].board
	reparsed := newRunGraph(rendered)
	if len(reparsed.nodes) != 1 {
		t.Fatalf("re-parsed board has %d runs, want 1", len(reparsed.nodes))
	}
	if reparsed.nodes[0].filter.Len() != 4 {
		t.Errorf("re-parsed run length = %d, want 4", reparsed.nodes[0].filter.Len())
	}
}

func TestSolverNoSolutionsIsEmpty(t *testing.T) {
	searcher := NewDAGSearcher(solverWordmap(t))
	// No three-letter word in this tiny dictionary is a subset of "xyz".
	solver := NewBoardSolver(searcher, "xyz", "###")
	if got := solver.FirstNSolutions(5); len(got) != 0 {
		t.Errorf("FirstNSolutions = %v, want empty", got)
	}
}
