package move

import (
	"fmt"

	"github.com/leastfixed/lambdavm/grid"
	"github.com/leastfixed/lambdavm/world"
)

// Command is a single robot instruction byte.
type Command byte

// The seven recognized commands.
const (
	Left  Command = 'L'
	Right Command = 'R'
	Up    Command = 'U'
	Down  Command = 'D'
	Wait  Command = 'W'
	Shave Command = 'S'
	Abort Command = 'A'
)

// IsValid reports whether c is one of the seven recognized commands.
func IsValid(c Command) bool {
	switch c {
	case Left, Right, Up, Down, Wait, Shave, Abort:
		return true
	default:
		return false
	}
}

// Execute applies one command to w in place. w must have Condition == None
// and c must be IsValid; callers (package vm) are expected to have already
// checked both, but Execute re-validates and returns an error rather than
// assuming the contract holds, since nothing else in this package can
// recover from a violated precondition mid-mutation.
func Execute(w *world.World, c Command) error {
	if w.Condition != world.None {
		return ErrNotRunning
	}
	if !IsValid(c) {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, byte(c))
	}

	switch c {
	case Left, Right, Up, Down:
		executeDirectional(w, c)
		w.MoveCount++
		w.Score--
	case Wait:
		w.MoveCount++
		w.Score--
	case Shave:
		executeShave(w)
		w.MoveCount++
		w.Score--
	case Abort:
		w.Score += 25 * w.CollectedLambdaCount
		w.Condition = world.Abort
	}
	return nil
}

// executeDirectional resolves one L/R/U/D step: entering open cells,
// collecting a lambda, winning via the open lift, pushing a rock, or
// teleporting via a trampoline. Any other target content is a no-op for
// position (the move still counts, per Execute's caller).
func executeDirectional(w *world.World, c Command) {
	x, y := w.RobotX, w.RobotY
	switch c {
	case Left:
		x--
	case Right:
		x++
	case Up:
		y++
	case Down:
		y--
	}

	switch target := w.Grid.Get(x, y); {
	case target == grid.Empty || target == grid.Earth:
		moveRobot(w, x, y)
	case target == grid.Lambda:
		moveRobot(w, x, y)
		w.CollectedLambdaCount++
		w.Score += 25
	case target == grid.Razor:
		moveRobot(w, x, y)
		w.RazorCount++
	case target == grid.OpenLift:
		moveRobot(w, x, y)
		w.Score += 50 * w.CollectedLambdaCount
		w.Condition = world.Win
	case grid.IsTrampolineLetter(target):
		teleport(w, target)
	case target == grid.Rock && (c == Left || c == Right):
		pushRock(w, x, y, c)
	}
}

// moveRobot clears the robot's old cell, places it at (x, y), and resets
// waterproofing if the new row is strictly above the waterline.
func moveRobot(w *world.World, x, y int) {
	w.Grid.Set(w.RobotX, w.RobotY, grid.Empty)
	w.RobotX, w.RobotY = x, y
	w.Grid.Set(x, y, grid.Robot)
	if y > w.WaterLevel {
		w.UsedRobotWaterproofing = 0
	}
}

// pushRock moves the robot into a rock's cell (x, y) and the rock one cell
// further in the same direction, provided that cell is empty. If it is
// not, the command is a no-op for position.
func pushRock(w *world.World, x, y int, c Command) {
	bx := x
	if c == Left {
		bx = x - 1
	} else {
		bx = x + 1
	}
	if w.Grid.Get(bx, y) != grid.Empty {
		return
	}
	w.Grid.Set(bx, y, grid.Rock)
	moveRobot(w, x, y)
}

// teleport resolves stepping onto a trampoline letter: the robot jumps to
// the bound target's cell, and every trampoline sharing that target
// (including the one just used) is cleared to empty.
func teleport(w *world.World, letter grid.Cell) {
	ord := grid.TrampolineOrdinal(letter)
	targetOrd := w.TrampolineTarget[ord]
	if targetOrd < 0 {
		// Unbound trampoline: invariant 4 says this should not occur in a
		// well-formed map; treat as a no-op rather than panic.
		return
	}

	for i := range w.TrampolineTarget {
		if w.TrampolineTarget[i] != targetOrd {
			continue
		}
		pos := w.TrampolinePos[i]
		w.Grid.Set(pos.X, pos.Y, grid.Empty)
		w.TrampolineTarget[i] = -1
		w.TrampolinePos[i] = grid.Coord{}
		w.TrampolineCount--
	}

	dest := w.TargetPos[targetOrd]
	w.Grid.Set(w.RobotX, w.RobotY, grid.Empty)
	w.RobotX, w.RobotY = dest.X, dest.Y
	w.Grid.Set(dest.X, dest.Y, grid.Robot)
	if dest.Y > w.WaterLevel {
		w.UsedRobotWaterproofing = 0
	}
}

// executeShave clears every beard cell in the robot's 3x3 neighborhood
// (including its own cell) if a razor is available.
func executeShave(w *world.World) {
	if w.RazorCount <= 0 {
		return
	}
	w.RazorCount--
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := w.RobotX+dx, w.RobotY+dy
			if w.Grid.Get(x, y) == grid.Beard {
				w.Grid.Set(x, y, grid.Empty)
			}
		}
	}
}
