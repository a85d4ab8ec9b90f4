package tick

import (
	"github.com/leastfixed/lambdavm/grid"
	"github.com/leastfixed/lambdavm/world"
)

// Update advances next by one tick, reading every predicate from prior and
// writing only to next. next must already equal prior cell-for-cell (the
// caller seeds it as prior.Clone()) so that cells no rule touches keep
// their correct value implicitly.
func Update(next, prior *world.World) {
	applyCellRules(next, prior, true)
	applyDrowning(next, prior)
	applyFlooding(next)
}

// UpdateIgnoringRobot advances next by one tick of world dynamics only:
// rock falls/slides and lift opening, without crush detection, beard
// growth, drowning, or flooding. Used by package costtable to preview how
// hazards evolve while probing reachability.
func UpdateIgnoringRobot(next, prior *world.World) {
	applyCellRules(next, prior, false)
}

// applyCellRules walks every cell of prior in the reference loop order
// (y ascending from 1, x ascending from 1) and applies rules 1-6. When
// withRobotEffects is true, crush detection and beard growth are applied;
// when false (the ghost-robot variant), only rock movement and lift
// opening run.
func applyCellRules(next, prior *world.World, withRobotEffects bool) {
	h, w := prior.Height(), prior.Width()
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			switch object := prior.Grid.Get(x, y); {
			case object == grid.Rock && prior.Grid.Get(x, y-1) == grid.Empty:
				// Rule 1: straight fall.
				applyRockLanding(next, prior, x, y, x, y-1, withRobotEffects)

			case object == grid.Rock && prior.Grid.Get(x, y-1) == grid.Rock &&
				prior.Grid.Get(x+1, y) == grid.Empty && prior.Grid.Get(x+1, y-1) == grid.Empty:
				// Rule 2: slide right off another rock.
				applyRockLanding(next, prior, x, y, x+1, y-1, withRobotEffects)

			case object == grid.Rock && prior.Grid.Get(x, y-1) == grid.Rock &&
				(prior.Grid.Get(x+1, y) != grid.Empty || prior.Grid.Get(x+1, y-1) != grid.Empty) &&
				prior.Grid.Get(x-1, y) == grid.Empty && prior.Grid.Get(x-1, y-1) == grid.Empty:
				// Rule 3: slide left off another rock.
				applyRockLanding(next, prior, x, y, x-1, y-1, withRobotEffects)

			case object == grid.Rock && prior.Grid.Get(x, y-1) == grid.Lambda &&
				prior.Grid.Get(x+1, y) == grid.Empty && prior.Grid.Get(x+1, y-1) == grid.Empty:
				// Rule 4: slide right off a lambda.
				applyRockLanding(next, prior, x, y, x+1, y-1, withRobotEffects)

			case object == grid.ClosedLift && prior.CollectedLambdaCount == prior.LambdaCount:
				// Rule 6: lift opens.
				next.Grid.Set(x, y, grid.OpenLift)
			}

			if withRobotEffects && prior.Grid.Get(x, y) == grid.Beard &&
				prior.BeardGrowthRate > 0 && prior.MoveCount%prior.BeardGrowthRate == 0 {
				// Rule 5: beard growth, reading next (cascading within the tick).
				growBeard(next, x, y)
			}
		}
	}
}

// applyRockLanding clears the rock's origin cell and places it at
// (landX, landY) in next. When withRobotEffects is set, a rock landing
// directly above the prior robot position crushes it.
func applyRockLanding(next, prior *world.World, originX, originY, landX, landY int, withRobotEffects bool) {
	next.Grid.Set(originX, originY, grid.Empty)
	next.Grid.Set(landX, landY, grid.Rock)
	if withRobotEffects && prior.RobotX == landX && prior.RobotY == landY-1 {
		next.Condition = world.Lose
	}
}

// growBeard turns every empty cell in (x,y)'s 3x3 neighborhood, read from
// next, into a beard cell. Reading next rather than prior lets beard
// growth cascade within a single tick, matching reference behavior.
func growBeard(next *world.World, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if next.Grid.Get(nx, ny) == grid.Empty {
				next.Grid.Set(nx, ny, grid.Beard)
			}
		}
	}
}

// applyDrowning checks the prior robot's row against next's water level
// (still this tick's starting level — flooding has not advanced it yet)
// and applies waterproofing accounting.
func applyDrowning(next, prior *world.World) {
	if prior.RobotY > next.WaterLevel {
		return
	}
	next.UsedRobotWaterproofing++
	if next.UsedRobotWaterproofing > next.RobotWaterproofing {
		next.Condition = world.Lose
	}
}

// applyFlooding raises the water level once per flooding-rate moves.
func applyFlooding(next *world.World) {
	if next.FloodingRate > 0 && next.MoveCount%next.FloodingRate == 0 {
		next.WaterLevel++
	}
}
