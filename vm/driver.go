package vm

import (
	"github.com/leastfixed/lambdavm/move"
	"github.com/leastfixed/lambdavm/tick"
	"github.com/leastfixed/lambdavm/world"
)

// MakeOneMove applies command m to s and returns the successor snapshot.
//
// If s is already terminal (Win, Lose, or Abort), the command is not
// applied at all and a clone of s is returned unchanged — terminal states
// absorb every further command. Otherwise m is executed on a clone of s;
// if that leaves the world still running, a second clone is ticked to
// resolve rock falls, beard growth, drowning, and flooding. An Abort
// command ends the simulation immediately without a tick, since there is
// no further world to advance.
//
// s is never mutated.
func MakeOneMove(s *world.World, m move.Command) *world.World {
	if s.Condition != world.None {
		return s.Clone()
	}

	moved := s.Clone()
	if err := move.Execute(moved, m); err != nil {
		// An invalid command leaves the world exactly as move.Execute found
		// it (it mutates nothing before returning an error); hand back that
		// unmodified clone rather than panicking on a caller bug.
		return moved
	}
	if moved.Condition != world.None {
		return moved
	}

	next := moved.Clone()
	tick.Update(next, moved)
	return next
}

// MakeMoves folds MakeOneMove over cs in order, starting from s. A
// terminal condition reached partway through cs absorbs every remaining
// command: the final snapshot reflects only the commands executed up to
// and including the one that ended the run.
func MakeMoves(s *world.World, cs []move.Command) *world.World {
	cur := s
	for _, c := range cs {
		cur = MakeOneMove(cur, c)
	}
	return cur
}
