package costtable

import (
	"math"

	"github.com/leastfixed/lambdavm/grid"
	"github.com/leastfixed/lambdavm/move"
	"github.com/leastfixed/lambdavm/tick"
	"github.com/leastfixed/lambdavm/world"
)

// Unreachable marks a cell Build's staged search never reaches.
const Unreachable = math.MaxInt

// Result holds the outcome of a Build call.
type Result struct {
	// Cost maps every cell Build assigned a distance to its stage number.
	// A cell absent from this map (or queried via CostAt) is Unreachable.
	Cost map[grid.Coord]int

	// Parent maps a reached cell to the frontier cell it was expanded
	// from, letting callers reconstruct the staged path taken to it.
	Parent map[grid.Coord]grid.Coord

	// Stages is the number of BFS stages actually performed before the
	// frontier was exhausted (or MaxStages cut the search short).
	Stages int
}

// CostAt returns c's cost, or Unreachable if Build never reached it.
func (r *Result) CostAt(c grid.Coord) int {
	if cost, ok := r.Cost[c]; ok {
		return cost
	}
	return Unreachable
}

// PathTo reconstructs the staged path from the source to dest, inclusive
// of both endpoints. ok is false if dest was never reached.
func (r *Result) PathTo(dest grid.Coord) (path []grid.Coord, ok bool) {
	if _, reached := r.Cost[dest]; !reached {
		return nil, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		prev, hasParent := r.Parent[cur]
		if !hasParent {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// walker encapsulates mutable Build state.
type walker struct {
	opts   Options
	res    *Result
	staged *world.World // world state at the current stage, before the next ignoring-robot tick
	peek   *world.World // staged advanced one tick.UpdateIgnoringRobot step
}

// Build produces a safety-aware cost table rooted at source within w. The
// frontier advances one tick.UpdateIgnoringRobot step between stages:
// stage k+1's expansions are checked for safety against the world as it
// will be after that many ignoring-robot ticks, not against w itself.
//
// w is never mutated.
func Build(w *world.World, source grid.Coord, opts ...Option) (*Result, error) {
	if w == nil {
		return nil, ErrWorldNil
	}
	if !w.Grid.InBounds(source.X, source.Y) {
		return nil, ErrSourceOutOfBounds
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	wk := &walker{
		opts: o,
		res: &Result{
			Cost:   map[grid.Coord]int{source: 0},
			Parent: make(map[grid.Coord]grid.Coord),
		},
		staged: w.Clone(),
	}
	wk.advancePeek()

	frontier := []grid.Coord{source}
	stage := 0
	for len(frontier) > 0 {
		if o.MaxStages > 0 && stage >= o.MaxStages {
			break
		}
		next := wk.expandStage(frontier, stage)
		if len(next) == 0 {
			break
		}
		wk.staged = wk.peek
		wk.advancePeek()
		frontier = next
		stage++
	}
	wk.res.Stages = stage
	return wk.res, nil
}

// advancePeek sets w.peek to w.staged advanced by one ignoring-robot tick.
func (w *walker) advancePeek() {
	peek := w.staged.Clone()
	tick.UpdateIgnoringRobot(peek, w.staged)
	w.peek = peek
}

// expandStage expands every cell in frontier (all at cost == stage) and
// returns the cells newly assigned cost stage+1.
func (w *walker) expandStage(frontier []grid.Coord, stage int) []grid.Coord {
	var next []grid.Coord
	for _, from := range frontier {
		for _, cmd := range []move.Command{move.Left, move.Right, move.Up, move.Down} {
			to, moved := simulateMove(w.staged, from, cmd)
			if !moved {
				continue
			}
			if _, already := w.res.Cost[to]; already {
				continue
			}
			if !isSafe(w.staged, w.peek, to) {
				continue
			}
			w.res.Cost[to] = stage + 1
			w.res.Parent[to] = from
			w.opts.OnExpand(from, to, stage+1)
			next = append(next, to)
		}
	}
	return next
}

// simulateMove imagines the robot teleported to from in staged and
// executes cmd against a disposable clone, reporting where that move
// would place it. Push and trampoline semantics are resolved exactly as
// package move resolves them for a real command; ok is false if the move
// is a no-op for position (push blocked, target a wall, and so on).
func simulateMove(staged *world.World, from grid.Coord, cmd move.Command) (to grid.Coord, ok bool) {
	probe := staged.Clone()
	probe.Grid.Set(probe.RobotX, probe.RobotY, grid.Empty)
	probe.Grid.Set(from.X, from.Y, grid.Robot)
	probe.RobotX, probe.RobotY = from.X, from.Y

	if err := move.Execute(probe, cmd); err != nil {
		return grid.Coord{}, false
	}
	if probe.RobotX == from.X && probe.RobotY == from.Y {
		return grid.Coord{}, false
	}
	return grid.Coord{X: probe.RobotX, Y: probe.RobotY}, true
}

// isSafe reports whether c is a safe expansion target: no rock is about
// to drop onto it. c's own enterability is not re-checked here — c came
// from simulateMove, which only ever returns a cell move.Execute would
// actually place the robot on (a direct step onto an enterable cell, a
// rock's post-push resting cell, or a teleport's landing cell), so
// re-deriving enterability from raw cell content would incorrectly
// reject legitimate push and teleport destinations whose pre-move
// content is a rock or a target digit.
func isSafe(prior, peek *world.World, c grid.Coord) bool {
	return !(prior.Grid.Get(c.X, c.Y+1) == grid.Empty && peek.Grid.Get(c.X, c.Y+1) == grid.Rock)
}
