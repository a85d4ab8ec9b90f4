package gridview

import (
	"fmt"
	"math"

	"github.com/leastfixed/lambdavm/core"
	"github.com/leastfixed/lambdavm/dfs"
	"github.com/leastfixed/lambdavm/dijkstra"
	"github.com/leastfixed/lambdavm/grid"
	"github.com/leastfixed/lambdavm/gridgraph"
	"github.com/leastfixed/lambdavm/world"
)

// isWalkable reports whether c is floor for static topology purposes:
// move.Execute's enterable set, plus the robot's own cell and a closed
// lift. Those last two are not "enterable" in the move sense (you cannot
// step onto the cell the robot already occupies, and a closed lift
// rejects entry until every lambda is collected) but they are still
// ground a path can pass through or terminate at, which is what
// connectivity questions over a frozen snapshot care about.
func isWalkable(c grid.Cell) bool {
	if grid.IsEnterable(c) {
		return true
	}
	return c == grid.Robot || c == grid.ClosedLift
}

// ToGridGraph converts w's static grid into a gridgraph.GridGraph: 1 for
// every walkable cell, 0 otherwise, so gridgraph.ConnectedComponents and
// gridgraph.ExpandIsland run directly against a cave snapshot. opts
// controls connectivity and the land/water threshold the same way it
// would for any other gridgraph.GridGraph; pass
// gridgraph.DefaultGridOptions() for 4-connected, walkable-is-land
// behavior.
func ToGridGraph(w *world.World, opts gridgraph.GridOptions) (*gridgraph.GridGraph, error) {
	values := make([][]int, w.Height())
	for row := 0; row < w.Height(); row++ {
		y := w.Height() - row
		values[row] = make([]int, w.Width())
		for col := 0; col < w.Width(); col++ {
			x := col + 1
			if isWalkable(w.Grid.Get(x, y)) {
				values[row][col] = 1
			}
		}
	}
	return gridgraph.NewGridGraph(values, opts)
}

// vertexID formats the vertex identifier for cell (x, y), matching the
// "x,y" convention gridgraph.GridGraph.ToCoreGraph uses.
func vertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ToCoreGraph builds a unit-weighted, undirected core.Graph whose vertices
// are w's walkable cells (see isWalkable) and whose edges connect
// cardinally adjacent walkable cells. Unlike costtable.Build, this is a
// single static snapshot view: no rock fall or tick is considered, making
// it a coarser but cheaper way to ask "is this cell reachable at all,
// ignoring rockfalls" via the generic bfs/dijkstra/dfs packages. bfs.BFS
// rejects weighted graphs, so it runs on core.UnweightedView of this graph.
func ToCoreGraph(w *world.World) *core.Graph {
	g := core.NewGraph(core.WithDirected(false), core.WithWeighted())

	for y := 1; y <= w.Height(); y++ {
		for x := 1; x <= w.Width(); x++ {
			if isWalkable(w.Grid.Get(x, y)) {
				_ = g.AddVertex(vertexID(x, y))
			}
		}
	}

	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for y := 1; y <= w.Height(); y++ {
		for x := 1; x <= w.Width(); x++ {
			if !isWalkable(w.Grid.Get(x, y)) {
				continue
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !w.Grid.InBounds(nx, ny) || !isWalkable(w.Grid.Get(nx, ny)) {
					continue
				}
				_, _ = g.AddEdge(vertexID(x, y), vertexID(nx, ny), 1)
			}
		}
	}
	return g
}

// StaticDistance runs dijkstra.Dijkstra from (fromX, fromY) to (toX, toY)
// over w's ToCoreGraph view, returning the unit-weight path length ignoring
// rockfalls. ok is false if either endpoint is not a walkable cell or if
// no path connects them.
//
// This is the same kind of question costtable.Build answers, but without
// costtable's hazard awareness: a cell this reports reachable may still be
// crushed or flooded the moment the robot actually tries to walk there.
func StaticDistance(w *world.World, fromX, fromY, toX, toY int) (dist int64, ok bool) {
	g := ToCoreGraph(w)
	from, to := vertexID(fromX, fromY), vertexID(toX, toY)
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, false
	}
	distances, _, err := dijkstra.Dijkstra(g, dijkstra.Source(from))
	if err != nil {
		return 0, false
	}
	d, reached := distances[to]
	if !reached || d == math.MaxInt64 {
		return 0, false
	}
	return d, true
}

// HasLoop reports whether w's walkable area contains a cycle: two distinct
// paths between some pair of cells, rather than a single tree-shaped
// corridor network. A cave that is one long corridor (or branches like a
// tree) has no loop; a cave with a room, or two corridors that rejoin, does.
func HasLoop(w *world.World) (bool, error) {
	g := ToCoreGraph(w)
	found, _, err := dfs.DetectCycles(g)
	if err != nil {
		return false, fmt.Errorf("gridview: HasLoop: %w", err)
	}
	return found, nil
}
