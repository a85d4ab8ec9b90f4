package world

import (
	"bytes"

	"github.com/leastfixed/lambdavm/grid"
)

// Condition is the terminal state of a World.
type Condition int

const (
	// None means the simulation is still running.
	None Condition = iota
	// Win means the robot reached the open lift.
	Win
	// Lose means the robot was crushed or drowned.
	Lose
	// Abort means the robot issued the abort command.
	Abort
)

// String renders the condition the way the reference VM's single-character
// condition codes would read out, but spelled out for readability.
func (c Condition) String() string {
	switch c {
	case None:
		return "NONE"
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	case Abort:
		return "ABORT"
	default:
		return "UNKNOWN"
	}
}

// trampolineCount is the number of letters (A..I) and digits (1..9)
// available for binding.
const trampolineCount = 9

// World is the complete state of a cave simulation at one tick boundary.
//
// Trampoline bindings are stored as two parallel fixed arrays indexed by
// letter/digit ordinal (TrampolineOrdinal/TargetOrdinal), plus a mapping
// array from trampoline ordinal to target ordinal. TrampolineTarget[i] is
// -1 when trampoline i is unbound or has already been cleared.
type World struct {
	Grid grid.Grid

	RobotX, RobotY int
	LiftX, LiftY   int

	WaterLevel             int
	FloodingRate           int
	RobotWaterproofing     int
	UsedRobotWaterproofing int

	BeardGrowthRate int
	RazorCount      int

	LambdaCount          int
	CollectedLambdaCount int

	TrampolinePos    [trampolineCount]grid.Coord
	TrampolineTarget [trampolineCount]int
	TargetPos        [trampolineCount]grid.Coord
	TrampolineCount  int

	MoveCount int
	Score     int
	Condition Condition
}

// New returns a World with an empty grid of the given dimensions and the
// defaults the parser applies to metadata-free maps (waterproofing=10,
// beard growth rate=25, no water, no flooding, no razors, no trampolines).
func New(width, height int) *World {
	w := &World{
		Grid:               grid.New(width, height),
		RobotWaterproofing: 10,
		BeardGrowthRate:    25,
	}
	for i := range w.TrampolineTarget {
		w.TrampolineTarget[i] = -1
	}
	return w
}

// Width is a convenience accessor delegating to the embedded grid.
func (w *World) Width() int { return w.Grid.Width() }

// Height is a convenience accessor delegating to the embedded grid.
func (w *World) Height() int { return w.Grid.Height() }

// Clone returns an independent deep copy of w. Mutating the clone never
// affects the original, and vice versa.
func (w *World) Clone() *World {
	c := *w
	c.Grid = w.Grid.Clone()
	return &c
}

// Equal reports whether w and o have identical state: every scalar field
// plus a byte-for-byte comparison of the grid buffer. This mirrors the
// reference VM's equal(), which memcmp's the whole struct-plus-buffer.
func (w *World) Equal(o *World) bool {
	if w == nil || o == nil {
		return w == o
	}
	if w.RobotX != o.RobotX || w.RobotY != o.RobotY ||
		w.LiftX != o.LiftX || w.LiftY != o.LiftY ||
		w.WaterLevel != o.WaterLevel || w.FloodingRate != o.FloodingRate ||
		w.RobotWaterproofing != o.RobotWaterproofing ||
		w.UsedRobotWaterproofing != o.UsedRobotWaterproofing ||
		w.BeardGrowthRate != o.BeardGrowthRate || w.RazorCount != o.RazorCount ||
		w.LambdaCount != o.LambdaCount || w.CollectedLambdaCount != o.CollectedLambdaCount ||
		w.TrampolineCount != o.TrampolineCount ||
		w.MoveCount != o.MoveCount || w.Score != o.Score || w.Condition != o.Condition {
		return false
	}
	if w.TrampolinePos != o.TrampolinePos || w.TrampolineTarget != o.TrampolineTarget || w.TargetPos != o.TargetPos {
		return false
	}
	if w.Grid.Width() != o.Grid.Width() || w.Grid.Height() != o.Grid.Height() {
		return false
	}
	return bytes.Equal(w.Grid.Bytes(), o.Grid.Bytes())
}

// ExpectedScore recomputes the invariant-6 score formula from scratch: 25 per
// collected lambda, minus one per recorded move, plus any terminal bonus.
// This is a verification helper for tests, not the live scoring path (the
// move and tick packages maintain Score incrementally as the C reference
// does).
func (w *World) ExpectedScore() int {
	base := 25*w.CollectedLambdaCount - w.MoveCount
	switch w.Condition {
	case Win:
		return base + 50*w.CollectedLambdaCount
	case Abort:
		return base + 25*w.CollectedLambdaCount
	default:
		return base
	}
}

// CountRobots returns the number of 'R' cells in the grid. Exactly zero or
// one is a hard invariant on every observable snapshot.
func (w *World) CountRobots() int {
	n := 0
	for _, b := range w.Grid.Bytes() {
		if grid.Cell(b) == grid.Robot {
			n++
		}
	}
	return n
}
