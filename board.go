// board.go
// This file implements the board parser: it turns an ASCII grid into a
// graph of runs (horizontal and vertical stretches of non-empty cells) and
// the character-intersection constraints between runs that cross at a
// shared cell.

package wordscapes

import (
	"fmt"
	"strings"
)

type tileKind int

const (
	tileEmpty tileKind = iota
	tileBlank
	tileChar
)

// boardTile is one grid cell: empty (outside every run), blank (in a run,
// letter unknown), or a known letter.
type boardTile struct {
	kind tileKind
	ch   byte
}

func (t boardTile) isEmpty() bool {
	return t.kind == tileEmpty
}

func parseTile(c byte) boardTile {
	switch {
	case c >= 'a' && c <= 'z':
		return boardTile{kind: tileChar, ch: c}
	case c >= 'A' && c <= 'Z':
		return boardTile{kind: tileChar, ch: c + ('a' - 'A')}
	case c == '#':
		return boardTile{kind: tileBlank}
	default:
		return boardTile{kind: tileEmpty}
	}
}

func (t boardTile) display() byte {
	switch t.kind {
	case tileChar:
		return t.ch
	case tileBlank:
		return '#'
	default:
		return '_'
	}
}

// rawBoard is the parsed grid, before run extraction.
type rawBoard struct {
	tiles  [][]boardTile
	height int
	width  int
}

// parseRawBoard parses a grid string per the board grammar: leading and
// trailing blank lines are trimmed, every remaining row must share a width.
// A row-width mismatch panics; per spec this is a caller-validation error,
// not a recoverable one.
func parseRawBoard(grid string) *rawBoard {
	grid = strings.Trim(grid, "\n\r")
	lines := strings.Split(grid, "\n")

	width := len(lines[0])
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != width {
			panic(fmt.Sprintf(
				"malformed board: row %d has width %d, want %d", i, len(lines[i]), width,
			))
		}
	}

	b := &rawBoard{height: len(lines), width: width}
	b.tiles = make([][]boardTile, b.height)
	for r, line := range lines {
		row := make([]boardTile, width)
		for c := 0; c < width; c++ {
			row[c] = parseTile(line[c])
		}
		b.tiles[r] = row
	}
	return b
}

func (b *rawBoard) at(r, c int) boardTile {
	if r < 0 || r >= b.height || c < 0 || c >= b.width {
		return boardTile{kind: tileEmpty}
	}
	return b.tiles[r][c]
}

// transpose returns a new rawBoard with rows and columns swapped, used to
// scan vertical runs with the same horizontal-scan logic.
func (b *rawBoard) transpose() *rawBoard {
	t := &rawBoard{height: b.width, width: b.height}
	t.tiles = make([][]boardTile, t.height)
	for r := 0; r < t.height; r++ {
		t.tiles[r] = make([]boardTile, t.width)
		for c := 0; c < t.width; c++ {
			t.tiles[r][c] = b.tiles[c][r]
		}
	}
	return t
}

func (b *rawBoard) String() string {
	var sb strings.Builder
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			sb.WriteByte(b.tiles[r][c].display())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// discoveredRun is a maximal run of non-empty cells found during a scan, in
// original-board coordinates regardless of scan orientation.
type discoveredRun struct {
	startRow, startCol int
	dirRow, dirCol     int
	cells              [][2]int
	// raw holds the run's characters for Filter derivation: a letter byte,
	// or '-' for a blank or any cell with no constraint yet.
	raw []byte
}

// scanRowRuns finds every maximal horizontal run of non-empty cells. A run
// begins on entering a non-empty cell from an empty cell (or row boundary)
// and ends on exit.
func scanRowRuns(b *rawBoard) []discoveredRun {
	var runs []discoveredRun
	for r := 0; r < b.height; r++ {
		var cur *discoveredRun
		for c := 0; c <= b.width; c++ {
			var t boardTile
			if c < b.width {
				t = b.at(r, c)
			}
			if c < b.width && !t.isEmpty() {
				if cur == nil {
					cur = &discoveredRun{startRow: r, startCol: c, dirRow: 0, dirCol: 1}
				}
				cur.cells = append(cur.cells, [2]int{r, c})
				if t.kind == tileChar {
					cur.raw = append(cur.raw, t.ch)
				} else {
					cur.raw = append(cur.raw, '-')
				}
				continue
			}
			if cur != nil {
				runs = append(runs, *cur)
				cur = nil
			}
		}
	}
	return runs
}

// scanColumnRuns finds every maximal vertical run by scanning the
// transposed board and translating coordinates and direction back.
func scanColumnRuns(b *rawBoard) []discoveredRun {
	transposed := scanRowRuns(b.transpose())
	runs := make([]discoveredRun, len(transposed))
	for i, run := range transposed {
		cells := make([][2]int, len(run.cells))
		for j, cell := range run.cells {
			cells[j] = [2]int{cell[1], cell[0]}
		}
		runs[i] = discoveredRun{
			startRow: run.startCol,
			startCol: run.startRow,
			dirRow:   1,
			dirCol:   0,
			cells:    cells,
			raw:      run.raw,
		}
	}
	return runs
}

// runNode is one run of the board: the filter its eventual word must match
// and where it sits on the board. candidate is nil until the solver
// tentatively assigns a word to it.
type runNode struct {
	candidate          *Word
	filter             Filter
	startRow, startCol int
	dirRow, dirCol     int
}

func (n *runNode) cellAt(i int) (row, col int) {
	return n.startRow + i*n.dirRow, n.startCol + i*n.dirCol
}

// characterConstraint says that character at offset A in one run must equal
// the character at offset B in the other.
type characterConstraint struct {
	aOffset, bOffset int
}

type runEdge struct {
	from, to   int
	constraint characterConstraint
}

// runGraph is the board's run graph: nodes are runs, edges are
// character-intersection constraints between runs that cross at a shared
// cell. Held as flat slices addressed by integer index, never pointers.
type runGraph struct {
	nodes     []runNode
	edges     []runEdge
	adjacency [][]int // node index -> incident edge indices, both directions
}

func axisDiff(r0, c0, r1, c1 int) int {
	dr, dc := r1-r0, c1-c0
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// newRunGraph builds the run graph for a parsed board: one node per maximal
// run (pruning length-1 runs), one edge per cell shared by exactly two
// runs.
func newRunGraph(b *rawBoard) *runGraph {
	runs := append(scanRowRuns(b), scanColumnRuns(b)...)

	membership := make([][][]int, b.height)
	for r := range membership {
		membership[r] = make([][]int, b.width)
	}

	nodes := make([]runNode, len(runs))
	for i, run := range runs {
		nodes[i] = runNode{
			filter:   NewFilter(string(run.raw)),
			startRow: run.startRow,
			startCol: run.startCol,
			dirRow:   run.dirRow,
			dirCol:   run.dirCol,
		}
		for _, cell := range run.cells {
			membership[cell[0]][cell[1]] = append(membership[cell[0]][cell[1]], i)
		}
	}

	var edges []runEdge
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			ids := membership[r][c]
			if len(ids) != 2 {
				continue
			}
			a, bIdx := ids[0], ids[1]
			edges = append(edges, runEdge{
				from: a,
				to:   bIdx,
				constraint: characterConstraint{
					aOffset: axisDiff(nodes[a].startRow, nodes[a].startCol, r, c),
					bOffset: axisDiff(nodes[bIdx].startRow, nodes[bIdx].startCol, r, c),
				},
			})
		}
	}

	return pruneShortRuns(nodes, edges)
}

// pruneShortRuns drops every run of length 1, along with any edge touching
// a dropped node, and remaps the surviving edges' endpoints to the
// surviving nodes' new indices.
func pruneShortRuns(nodes []runNode, edges []runEdge) *runGraph {
	remap := make([]int, len(nodes))
	kept := make([]runNode, 0, len(nodes))
	for i, n := range nodes {
		if n.filter.Len() <= 1 {
			remap[i] = -1
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, n)
	}

	keptEdges := make([]runEdge, 0, len(edges))
	for _, e := range edges {
		from, to := remap[e.from], remap[e.to]
		if from < 0 || to < 0 {
			continue
		}
		keptEdges = append(keptEdges, runEdge{from: from, to: to, constraint: e.constraint})
	}

	g := &runGraph{nodes: kept, edges: keptEdges}
	g.buildAdjacency()
	return g
}

func (g *runGraph) buildAdjacency() {
	g.adjacency = make([][]int, len(g.nodes))
	for ei, e := range g.edges {
		g.adjacency[e.from] = append(g.adjacency[e.from], ei)
		g.adjacency[e.to] = append(g.adjacency[e.to], ei)
	}
}

func (g *runGraph) degree(n int) int {
	return len(g.adjacency[n])
}

// neighbors returns the node indices reachable from n via a single edge,
// undirected.
func (g *runGraph) neighbors(n int) []int {
	ns := make([]int, 0, len(g.adjacency[n]))
	for _, ei := range g.adjacency[n] {
		e := g.edges[ei]
		if e.from == n {
			ns = append(ns, e.to)
		} else {
			ns = append(ns, e.from)
		}
	}
	return ns
}

// render reconstructs a rawBoard from the graph's current candidate
// assignments, for display. Panics if any node is unassigned; callers
// should only render complete solutions.
func (g *runGraph) render() *rawBoard {
	height, width := 0, 0
	for _, n := range g.nodes {
		last := n.filter.Len() - 1
		r, c := n.cellAt(last)
		if r+1 > height {
			height = r + 1
		}
		if c+1 > width {
			width = c + 1
		}
	}

	b := &rawBoard{height: height, width: width}
	b.tiles = make([][]boardTile, height)
	for r := range b.tiles {
		b.tiles[r] = make([]boardTile, width)
	}

	for _, n := range g.nodes {
		if n.candidate == nil {
			panic("render called with an unassigned run")
		}
		for i := 0; i < n.filter.Len(); i++ {
			r, c := n.cellAt(i)
			b.tiles[r][c] = boardTile{kind: tileChar, ch: n.candidate.Text[i]}
		}
	}
	return b
}
