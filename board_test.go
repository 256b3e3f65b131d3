package wordscapes

import "testing"

// TestParseRawBoardGrammar checks the grid alphabet: ' ' and '_' are empty,
// '#' is a pre-filled unknown letter, and letters are pre-filled known
// letters (case-folded).
func TestParseRawBoardGrammar(t *testing.T) {
	b := parseRawBoard("C_#\n_#_\n")
	if b.height != 2 || b.width != 3 {
		t.Fatalf("parsed board is %dx%d, want 2x3", b.height, b.width)
	}
	if tile := b.at(0, 0); tile.kind != tileChar || tile.ch != 'c' {
		t.Errorf("cell (0,0) = %+v, want lowercased char 'c'", tile)
	}
	if tile := b.at(0, 1); tile.kind != tileEmpty {
		t.Errorf("cell (0,1) = %+v, want empty", tile)
	}
	if tile := b.at(0, 2); tile.kind != tileBlank {
		t.Errorf("cell (0,2) = %+v, want blank", tile)
	}
}

func TestParseRawBoardPanicsOnRowWidthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for mismatched row widths")
		}
	}()
	parseRawBoard("abc\nde\n")
}

// TestRunGraphPlusShape builds the run graph for a small plus-shaped board:
//
//	_#_
//	###
//	_#_
//
// Scanning finds six candidate runs (three horizontal, three vertical); the
// four length-1 runs at the arms are pruned, leaving the middle row and
// middle column as the only two runs, crossing at (1,1).
func TestRunGraphPlusShape(t *testing.T) {
	raw := parseRawBoard("_#_\n###\n_#_\n")
	g := newRunGraph(raw)

	if len(g.nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(g.nodes))
	}
	for i, n := range g.nodes {
		if n.filter.Len() != 3 {
			t.Errorf("node %d has filter length %d, want 3", i, n.filter.Len())
		}
	}
	if len(g.edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(g.edges))
	}
	e := g.edges[0]
	if e.constraint.aOffset != 1 || e.constraint.bOffset != 1 {
		t.Errorf("crossing constraint = %+v, want offsets (1, 1)", e.constraint)
	}
}

// TestRunGraphSingleRun checks a board with no crossing: a lone horizontal
// run, all four vertical "runs" pruned for being length 1.
func TestRunGraphSingleRun(t *testing.T) {
	raw := parseRawBoard("####")
	g := newRunGraph(raw)

	if len(g.nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(g.nodes))
	}
	if g.nodes[0].filter.Len() != 4 {
		t.Errorf("run length = %d, want 4", g.nodes[0].filter.Len())
	}
	if len(g.edges) != 0 {
		t.Errorf("got %d edges, want 0", len(g.edges))
	}
}
